/*
Package maze provides tools for creating rectangular mazes.

It defines a grid of cell states and a Generator that carves a perfect maze
(a spanning tree over the odd-coordinate cells) using Wilson's algorithm, a
loop-erased random walk. The finished grid contains only Wall and Path cells,
with a fixed entrance on the top border and a fixed exit on the bottom border.

Utility functions enable completeness checks and ASCII visualization of the
maze.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

// ErrDimensions reports a requested size too small to hold a maze interior.
var ErrDimensions = errors.New("maze dimensions must be at least 3 by 3")

// Generator carves a perfect maze over a rectangular grid of cell states.
// Dimensions are forced odd on construction; only odd-odd cells are maze
// positions and movement is always a two-cell stride between them.
type Generator struct {
	height int
	width  int
	grid   [][]State
	rng    *rand.Rand
}

// New initializes a generator for the given dimensions. Even dimensions are
// incremented to the next odd value. A nil rng falls back to a time-seeded
// source; passing a fixed-seed source makes generation reproducible.
func New(height, width int, rng *rand.Rand) (*Generator, error) {
	if height%2 == 0 {
		height++
	}
	if width%2 == 0 {
		width++
	}
	if height < 3 || width < 3 {
		return nil, ErrDimensions
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid := make([][]State, height)
	for i := range grid {
		grid[i] = make([]State, width)
	}

	return &Generator{
		height: height,
		width:  width,
		grid:   grid,
		rng:    rng,
	}, nil
}

// Height returns the grid height after odd-forcing.
func (g *Generator) Height() int {
	return g.height
}

// Width returns the grid width after odd-forcing.
func (g *Generator) Width() int {
	return g.width
}

// Grid exposes the cell states. Callers must treat the result as read-only.
func (g *Generator) Grid() [][]State {
	return g.grid
}

// Entrance returns the fixed entry cell on the top border.
func (g *Generator) Entrance() Position {
	return Position{Row: 0, Col: 1}
}

// Exit returns the fixed exit cell on the bottom border.
func (g *Generator) Exit() Position {
	return Position{Row: g.height - 1, Col: g.width - 2}
}

// Generate carves the maze to completion. It seeds the maze with one random
// cell, then repeatedly runs loop-erased random walks from unvisited cells
// until every odd-odd cell is part of the maze, and finally opens the
// entrance and exit.
func (g *Generator) Generate() {
	first := g.randomCell()
	g.grid[first.Row][first.Col] = Path

	for !g.IsComplete() {
		g.randomWalk()
	}

	g.grid[0][1] = Path
	g.grid[g.height-1][g.width-2] = Path
}

// IsComplete reports whether every odd-odd cell has been carved.
func (g *Generator) IsComplete() bool {
	for r := 1; r < g.height; r += 2 {
		for c := 1; c < g.width; c += 2 {
			if g.grid[r][c] != Path {
				return false
			}
		}
	}
	return true
}

// randomCell picks a random odd-odd position within the maze.
func (g *Generator) randomCell() Position {
	return Position{
		Row: 1 + 2*g.rng.Intn(g.height/2),
		Col: 1 + 2*g.rng.Intn(g.width/2),
	}
}

// randomUnvisitedCell selects a random odd-odd position not yet in the maze.
func (g *Generator) randomUnvisitedCell() Position {
	for {
		pos := g.randomCell()
		if g.grid[pos.Row][pos.Col] == Wall {
			return pos
		}
	}
}

// moves finds all valid two-cell strides from a given position.
func (g *Generator) moves(pos Position) []Position {
	var result []Position
	for _, delta := range directions {
		next := Position{Row: pos.Row + 2*delta.Row, Col: pos.Col + 2*delta.Col}
		if next.Row >= 0 && next.Row < g.height && next.Col >= 0 && next.Col < g.width {
			result = append(result, next)
		}
	}
	return result
}

// randomWalk performs one loop-erased random walk starting from an unvisited
// cell. The walk marks visited cells and their connecting walls WorkingPath;
// on self-intersection the loop is erased and the walk continues from the
// shortened tail; on reaching the existing maze the whole walk is committed.
func (g *Generator) randomWalk() {
	start := g.randomUnvisitedCell()
	g.grid[start.Row][start.Col] = WorkingPath
	walk := []Position{start}
	visited := map[Position]int{start: 0}

	for {
		tail := walk[len(walk)-1]
		moves := g.moves(tail)
		next := moves[g.rng.Intn(len(moves))]
		between := wallBetween(tail, next)
		g.grid[between.Row][between.Col] = WorkingPath

		if g.grid[next.Row][next.Col] == Path {
			// The walk reached the maze; keep everything.
			g.commit()
			return
		}

		if at, seen := visited[next]; seen {
			// Self-intersection: revert the wall just carved and unwind the
			// walk back to the first visit of next. The cell at the loop
			// start stays WorkingPath, it is still the walk's tail.
			g.grid[between.Row][between.Col] = Wall
			for i := len(walk) - 1; i > at; i-- {
				cell, prev := walk[i], walk[i-1]
				mid := wallBetween(cell, prev)
				g.grid[cell.Row][cell.Col] = Wall
				g.grid[mid.Row][mid.Col] = Wall
				delete(visited, cell)
			}
			walk = walk[:at+1]
			continue
		}

		g.grid[next.Row][next.Col] = WorkingPath
		visited[next] = len(walk)
		walk = append(walk, next)
	}
}

// commit converts every WorkingPath cell in the grid to Path, finalizing the
// current walk as part of the maze.
func (g *Generator) commit() {
	for r := range g.grid {
		for c := range g.grid[r] {
			if g.grid[r][c] == WorkingPath {
				g.grid[r][c] = Path
			}
		}
	}
}

// wallBetween returns the midpoint wall cell separating two positions that
// are a two-cell stride apart.
func wallBetween(a, b Position) Position {
	return Position{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}

// String provides a textual representation of the maze.
func (g *Generator) String() string {
	var output strings.Builder
	for _, row := range g.grid {
		for _, state := range row {
			switch state {
			case Path:
				output.WriteString("  ")
			case WorkingPath:
				output.WriteString("..")
			default:
				output.WriteString("##")
			}
		}
		output.WriteByte('\n')
	}
	return output.String()
}
