package ui

import (
	"image"

	"lifeboard/internal/core"
)

// GridOrigin is where the top-left cell is drawn.
var GridOrigin = image.Pt(0, BarHeight)

// ScreenSize returns the logical screen needed for the grid and the bar.
func ScreenSize(size core.Size, scale int) (int, int) {
	w := size.W * scale
	if bw := NewBar().Width(); bw > w {
		w = bw
	}
	return w, GridOrigin.Y + size.H*scale
}

// CellAt converts a logical screen position into grid coordinates.
func CellAt(px, py, scale int, size core.Size) (int, int, bool) {
	if scale <= 0 {
		return 0, 0, false
	}
	px -= GridOrigin.X
	py -= GridOrigin.Y
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y := px/scale, py/scale
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}
