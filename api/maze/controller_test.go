package mazeapi

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"amaze/maze"
	"amaze/service"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc, err := service.NewMazeService(rand.New(rand.NewSource(5)), nopLogger{})
	assert.NoError(t, err)
	controller, err := NewMazeController(svc)
	assert.NoError(t, err)

	router := gin.New()
	controller.Register(router.Group("/api/v1"))
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpoint(t *testing.T) {
	router := newTestRouter(t)

	t.Run("creates and solves a maze", func(t *testing.T) {
		w := postJSON(router, "/api/v1/mazes/", GenerateRequest{Height: 6, Width: 6})
		assert.Equal(t, http.StatusCreated, w.Code)

		var response MazeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 7, response.Height)
		assert.Equal(t, 7, response.Width)
		assert.Len(t, response.Grid, 7)
		assert.NotEmpty(t, response.Solution)
		assert.Equal(t, response.Entrance, response.Solution[0])
		assert.Equal(t, response.Exit, response.Solution[len(response.Solution)-1])
	})

	t.Run("rejects malformed bodies", func(t *testing.T) {
		w := postJSON(router, "/api/v1/mazes/", gin.H{"height": "nine", "width": 9})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects degenerate dimensions", func(t *testing.T) {
		w := postJSON(router, "/api/v1/mazes/", GenerateRequest{Height: 1, Width: 1})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("rejects oversized dimensions", func(t *testing.T) {
		w := postJSON(router, "/api/v1/mazes/", GenerateRequest{Height: 3, Width: maxDimension + 1})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestSolveEndpoint(t *testing.T) {
	router := newTestRouter(t)

	solvable := [][]maze.State{
		{0, 1, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 1, 0},
	}

	t.Run("routes a valid grid", func(t *testing.T) {
		w := postJSON(router, "/api/v1/mazes/solve", SolveRequest{Grid: solvable})
		assert.Equal(t, http.StatusOK, w.Code)

		var response SolveResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Path, 7)
		assert.Equal(t, 1, response.Path[0].X)
		assert.Equal(t, 0, response.Path[0].Y)
	})

	t.Run("reports unsolvable grids", func(t *testing.T) {
		allWall := make([][]maze.State, 5)
		for i := range allWall {
			allWall[i] = make([]maze.State, 5)
		}

		w := postJSON(router, "/api/v1/mazes/solve", SolveRequest{Grid: allWall})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("rejects ragged grids", func(t *testing.T) {
		ragged := [][]maze.State{
			make([]maze.State, 5),
			make([]maze.State, 4),
			make([]maze.State, 5),
		}

		w := postJSON(router, "/api/v1/mazes/solve", SolveRequest{Grid: ragged})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown cell states", func(t *testing.T) {
		bad := [][]maze.State{
			{0, 7, 0},
			{0, 7, 0},
			{0, 7, 0},
		}

		w := postJSON(router, "/api/v1/mazes/solve", SolveRequest{Grid: bad})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a missing grid", func(t *testing.T) {
		w := postJSON(router, "/api/v1/mazes/solve", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
