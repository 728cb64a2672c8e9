package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	dmn "amaze/domain"
	"amaze/maze"
	"amaze/service/i"
	"amaze/solve"
)

// MazeService builds solved mazes on demand. Generation and solving are
// synchronous; the shared random source is the only state crossing requests
// and is guarded by a mutex.
type MazeService struct {
	rng    *rand.Rand
	rngMu  sync.Mutex
	logger i.Logger
}

// NewMazeService creates the service. A nil rng falls back to a time-seeded
// source; tests pass a fixed-seed source for reproducible mazes.
func NewMazeService(rng *rand.Rand, logger i.Logger) (*MazeService, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MazeService{
		rng:    rng,
		logger: logger,
	}, nil
}

// NewMaze generates a maze of the given dimensions, solves it, and returns
// the finished grid with its unique entrance-to-exit path.
func (s *MazeService) NewMaze(height, width int) (*dmn.Maze, error) {
	s.rngMu.Lock()
	gen, err := maze.New(height, width, s.rng)
	if err != nil {
		s.rngMu.Unlock()
		return nil, err
	}
	gen.Generate()
	s.rngMu.Unlock()

	path, err := s.Solve(gen.Grid())
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, errors.New("generated maze has no entrance-to-exit path")
	}

	m := &dmn.Maze{
		ID:       uuid.New(),
		Height:   gen.Height(),
		Width:    gen.Width(),
		Grid:     gen.Grid(),
		Entrance: solve.Point{X: gen.Entrance().Col, Y: gen.Entrance().Row},
		Exit:     solve.Point{X: gen.Exit().Col, Y: gen.Exit().Row},
		Solution: path,
	}

	s.logger.Info(fmt.Sprintf("Generated maze %s (%dx%d, path length %d)", m.ID, m.Height, m.Width, len(path)))
	return m, nil
}

// Solve builds a pathfinder over the grid and runs the search. An empty path
// with a nil error means the exit is unreachable from the entrance.
func (s *MazeService) Solve(grid [][]maze.State) ([]solve.Point, error) {
	finder, err := solve.New(grid)
	if err != nil {
		return nil, err
	}
	return finder.FindPath(), nil
}
