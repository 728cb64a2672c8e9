// Package mazeapi provides structures and utilities for maze generation and
// solving requests.
package mazeapi

import (
	"github.com/google/uuid"

	"amaze/maze"
	"amaze/solve"
)

// GenerateRequest represents a request to create a new maze.
type GenerateRequest struct {
	Height int `json:"height" binding:"required,gte=1"`
	Width  int `json:"width" binding:"required,gte=1"`
}

// MazeResponse represents a generated maze and its solution. Height and
// Width are the dimensions after odd-forcing, which may exceed the request.
type MazeResponse struct {
	ID       uuid.UUID      `json:"id"`
	Height   int            `json:"height"`
	Width    int            `json:"width"`
	Grid     [][]maze.State `json:"grid"`
	Entrance solve.Point    `json:"entrance"`
	Exit     solve.Point    `json:"exit"`
	Solution []solve.Point  `json:"solution"`
}

// SolveRequest carries a finished grid to route.
type SolveRequest struct {
	Grid [][]maze.State `json:"grid" binding:"required"`
}

// SolveResponse contains the entrance-to-exit path through the grid.
type SolveResponse struct {
	Path []solve.Point `json:"path"`
}
