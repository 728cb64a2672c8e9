package i

import (
	dmn "amaze/domain"
	"amaze/maze"
	"amaze/solve"
)

// MazeCrafter generates solved mazes and routes finished grids.
type MazeCrafter interface {
	// NewMaze generates a maze of roughly the given dimensions (each is
	// forced odd) and solves it.
	NewMaze(height, width int) (*dmn.Maze, error)

	// Solve finds the entrance-to-exit path through a finished grid. An
	// empty path with a nil error means the exit is unreachable.
	Solve(grid [][]maze.State) ([]solve.Point, error)
}
