package solve

// Point is one step of a solved path, expressed as X (column) and Y (row).
type Point struct {
	X int `json:"x"` // Column index
	Y int `json:"y"` // Row index
}

// node is one entry of the dense search arena, one per grid cell. Parent and
// adjacency are indices into the same arena, never owning references; the
// whole arena is reset per search and torn down as one unit. Parent is -1
// when unset.
type node struct {
	x, y     int
	parent   int
	adjacent []int
	g, h, f  int
}
