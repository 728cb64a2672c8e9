package mazeapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"amaze/maze"
	"amaze/service/i"
)

// maxDimension caps requested maze sizes at the API boundary.
const maxDimension = 101

// MazeController manages maze generation and solving endpoints.
type MazeController struct {
	crafter i.MazeCrafter
}

// NewMazeController initializes a MazeController.
func NewMazeController(crafter i.MazeCrafter) (*MazeController, error) {
	if crafter == nil {
		return nil, errors.New("maze crafter is required")
	}
	return &MazeController{crafter: crafter}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.generate)
		mazes.POST("/solve", mc.solve)
	}
}

// generate handles maze creation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Height > maxDimension || request.Width > maxDimension {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "maze dimensions too large"})
		return
	}

	m, err := mc.crafter.NewMaze(request.Height, request.Width)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, &MazeResponse{
		ID:       m.ID,
		Height:   m.Height,
		Width:    m.Width,
		Grid:     m.Grid,
		Entrance: m.Entrance,
		Exit:     m.Exit,
		Solution: m.Solution,
	})
}

// solve handles routing requests over a previously generated grid.
func (mc *MazeController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, row := range request.Grid {
		for _, state := range row {
			if state > maze.WorkingPath {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "grid contains unknown cell states"})
				return
			}
		}
	}

	path, err := mc.crafter.Solve(request.Grid)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(path) == 0 {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "maze has no entrance-to-exit path"})
		return
	}

	ctx.JSON(http.StatusOK, &SolveResponse{Path: path})
}
