package patterns

import "fmt"

// Pattern is a named, immutable rectangular mask of cell states.
type Pattern struct {
	Name        string
	Description string
	Width       int
	Height      int

	cells [][]bool
}

// NewPattern copies mask into a Pattern. Height is the number of rows and
// Width the length of the first row; every row must have that length.
func NewPattern(name, description string, mask [][]bool) (Pattern, error) {
	h := len(mask)
	w := 0
	if h > 0 {
		w = len(mask[0])
	}
	cells := make([][]bool, h)
	for y, row := range mask {
		if len(row) != w {
			return Pattern{}, fmt.Errorf("%w: %q row %d has %d cells, expected %d", ErrRaggedMask, name, y, len(row), w)
		}
		cells[y] = append([]bool(nil), row...)
	}
	return Pattern{Name: name, Description: description, Width: w, Height: h, cells: cells}, nil
}

// MustPattern is NewPattern for masks known to be rectangular.
func MustPattern(name, description string, mask [][]bool) Pattern {
	p, err := NewPattern(name, description, mask)
	if err != nil {
		panic(err)
	}
	return p
}

// Cell reports whether the mask is set at (x, y).
func (p Pattern) Cell(x, y int) bool {
	if x < 0 || y < 0 || y >= p.Height || x >= p.Width {
		return false
	}
	return p.cells[y][x]
}

// Cells returns a copy of the mask indexed [y][x].
func (p Pattern) Cells() [][]bool {
	rows := make([][]bool, len(p.cells))
	for y, row := range p.cells {
		rows[y] = append([]bool(nil), row...)
	}
	return rows
}

// Live returns the number of set cells in the mask.
func (p Pattern) Live() int {
	n := 0
	for _, row := range p.cells {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// parseRows builds a mask from rows of '.' (dead) and any other rune (alive).
func parseRows(rows ...string) [][]bool {
	mask := make([][]bool, len(rows))
	for y, row := range rows {
		mask[y] = make([]bool, 0, len(row))
		for _, r := range row {
			mask[y] = append(mask[y], r != '.')
		}
	}
	return mask
}
