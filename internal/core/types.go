package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Status is a point-in-time summary of a running session for status lines.
type Status struct {
	Generation uint64
	Population int
	Speed      float64
	Paused     bool
}
