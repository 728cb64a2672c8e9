/*
Package solve computes the optimal route through a generated maze.

It builds an adjacency graph over the grid's Path cells and runs an A* search
with a Manhattan heuristic from the fixed entrance (row 0, col 1) to the
fixed exit (last row, second-to-last column). Because a generated maze is a
spanning tree, the returned path is the unique route between the two.
*/
package solve

import (
	"errors"

	"amaze/maze"
)

// ErrBadGrid reports a grid the solver cannot index: empty, ragged, or too
// small to contain the fixed entrance and exit.
var ErrBadGrid = errors.New("grid must be rectangular and at least 3 by 3")

// sides are the four grid-adjacent deltas as row, col pairs.
var sides = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Pathfinder holds the node arena for one grid snapshot. The grid itself is
// not retained; construction reads it once to build adjacency.
type Pathfinder struct {
	height int
	width  int
	nodes  []node
}

// New builds a node for every grid cell, indexed in row-major order, and
// links each cell to every grid-adjacent neighbor whose state is Path. The
// grid must not be mutated concurrently with construction.
func New(grid [][]maze.State) (*Pathfinder, error) {
	height := len(grid)
	if height < 3 {
		return nil, ErrBadGrid
	}
	width := len(grid[0])
	if width < 3 {
		return nil, ErrBadGrid
	}
	for _, row := range grid {
		if len(row) != width {
			return nil, ErrBadGrid
		}
	}

	p := &Pathfinder{
		height: height,
		width:  width,
		nodes:  make([]node, height*width),
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			n := &p.nodes[r*width+c]
			n.x, n.y = c, r
			n.parent = -1
			for _, side := range sides {
				nr, nc := r+side[0], c+side[1]
				if nr < 0 || nr >= height || nc < 0 || nc >= width {
					continue
				}
				if grid[nr][nc] == maze.Path {
					n.adjacent = append(n.adjacent, nr*width+nc)
				}
			}
		}
	}
	return p, nil
}

// openEntry is one frontier candidate. Entries are never de-duplicated; each
// carries its own parent and cost snapshot, applied to the node only when
// the entry is selected.
type openEntry struct {
	node   int
	parent int
	g      int
	h      int
	f      int
}

// FindPath runs the A* search and returns the ordered entrance-to-exit path,
// both endpoints inclusive. It returns nil when the exit is unreachable,
// which for a properly generated maze never happens. Search state is reset
// on entry, so repeated calls are independent.
func (p *Pathfinder) FindPath() []Point {
	for i := range p.nodes {
		n := &p.nodes[i]
		n.parent, n.g, n.h, n.f = -1, 0, 0, 0
	}

	start := 1 // row 0, col 1
	end := (p.height-1)*p.width + (p.width - 2)

	closed := make([]bool, len(p.nodes))
	closed[start] = true
	var open []openEntry

	current := start
	for current != end {
		for _, adj := range p.nodes[current].adjacent {
			if closed[adj] {
				continue
			}
			h := p.manhattan(adj, end)
			g := p.nodes[current].g + p.manhattan(adj, current)
			open = append(open, openEntry{node: adj, parent: current, g: g, h: h, f: g + h})
		}

		if len(open) == 0 {
			// Exhausted frontier, the exit is unreachable.
			return nil
		}

		// First entry with the globally lowest F wins ties.
		best := 0
		for i, entry := range open {
			if entry.f < open[best].f {
				best = i
			}
		}
		chosen := open[best]
		open = append(open[:best], open[best+1:]...)

		n := &p.nodes[chosen.node]
		n.parent, n.g, n.h, n.f = chosen.parent, chosen.g, chosen.h, chosen.f
		closed[chosen.node] = true
		current = chosen.node
	}

	var path []Point
	for i := end; i >= 0; i = p.nodes[i].parent {
		path = append(path, Point{X: p.nodes[i].x, Y: p.nodes[i].y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// manhattan returns the Manhattan distance between two arena nodes.
func (p *Pathfinder) manhattan(a, b int) int {
	dx := p.nodes[a].x - p.nodes[b].x
	dy := p.nodes[a].y - p.nodes[b].y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
