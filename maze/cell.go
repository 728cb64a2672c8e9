package maze

import "fmt"

// State describes what a single grid cell currently is. Cells at odd row and
// odd column are the addressable maze positions; cells with at least one even
// coordinate are the walls separating them.
type State uint8

const (
	// Wall is an uncarved cell.
	Wall State = iota
	// Path is a cell belonging to the finished maze.
	Path
	// WorkingPath marks a cell visited by the random walk currently in
	// progress. It never survives past Generate.
	WorkingPath
)

// String provides a textual representation of the cell state.
func (s State) String() string {
	switch s {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case WorkingPath:
		return "working"
	default:
		return fmt.Sprintf("unknown state %d", uint8(s))
	}
}

// Position represents the position of a cell in the maze grid.
type Position struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// directions are the four axis-aligned unit deltas, in a fixed order so that
// generation is reproducible under a fixed random source.
var directions = []Position{
	{Row: -1, Col: 0}, // North
	{Row: 1, Col: 0},  // South
	{Row: 0, Col: 1},  // East
	{Row: 0, Col: -1}, // West
}
