package life

// Grid implements Conway's Game of Life on a bounded board. Cells outside the
// board are permanently dead; there is no wrapping.
type Grid struct {
	w, h int
	cur  []bool
	nxt  []bool
	gen  uint64
}

// New returns an empty grid with the provided dimensions.
func New(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{w: w, h: h, cur: make([]bool, w*h), nxt: make([]bool, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Generation reports how many times Step has run.
func (g *Grid) Generation() uint64 { return g.gen }

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Cell reports whether (x, y) is alive. Out-of-range coordinates are dead.
func (g *Grid) Cell(x, y int) bool {
	if !g.inside(x, y) {
		return false
	}
	return g.cur[y*g.w+x]
}

// Set updates the cell at (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.inside(x, y) {
		return
	}
	g.cur[y*g.w+x] = alive
}

// Toggle flips the cell at (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Toggle(x, y int) {
	if !g.inside(x, y) {
		return
	}
	idx := y*g.w + x
	g.cur[idx] = !g.cur[idx]
}

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.cur)
}

// LiveNeighbors counts the live cells among the eight neighbours of (x, y).
func (g *Grid) LiveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Cell(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// NextState applies B3/S23 to a single cell.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step advances the grid by one generation. The next state is computed into
// the back buffer from the untouched current buffer, then the two are swapped.
func (g *Grid) Step() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := y*g.w + x
			g.nxt[idx] = NextState(g.cur[idx], g.LiveNeighbors(x, y))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur {
		if alive {
			n++
		}
	}
	return n
}

// Cells returns a copy of the board indexed [y][x].
func (g *Grid) Cells() [][]bool {
	rows := make([][]bool, g.h)
	for y := range rows {
		rows[y] = make([]bool, g.w)
		copy(rows[y], g.cur[y*g.w:(y+1)*g.w])
	}
	return rows
}

// Fill writes the board into dst as row-major 0/1 bytes, growing dst when it
// is too small, and returns the filled slice.
func (g *Grid) Fill(dst []uint8) []uint8 {
	total := g.w * g.h
	if cap(dst) < total {
		dst = make([]uint8, total)
	}
	dst = dst[:total]
	for i, alive := range g.cur {
		if alive {
			dst[i] = 1
			continue
		}
		dst[i] = 0
	}
	return dst
}
