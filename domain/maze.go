// Package domain holds the core entities exchanged between services and
// controllers.
package domain

import (
	"github.com/google/uuid"

	"amaze/maze"
	"amaze/solve"
)

// Maze is one generated maze together with its solved route. The grid is the
// finalized cell-state array; Solution runs from Entrance to Exit inclusive.
type Maze struct {
	ID       uuid.UUID      // Identifier stamped at generation time
	Height   int            // Grid height after odd-forcing
	Width    int            // Grid width after odd-forcing
	Grid     [][]maze.State // Finalized cell states
	Entrance solve.Point    // Fixed entry cell on the top border
	Exit     solve.Point    // Fixed exit cell on the bottom border
	Solution []solve.Point  // Unique entrance-to-exit path
}
