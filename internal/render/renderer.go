//go:build ebiten

package render

import (
	"image/color"

	"lifeboard/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var borderColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// GridPainter updates a single RGBA image based on grid state.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	cells   []uint8
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: DefaultPalette}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid into the painter image and draws it scaled at
// (offsetX, offsetY) with a border around it.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *life.Grid, offsetX, offsetY, scale int) {
	if g.Width() != gp.w || g.Height() != gp.h {
		return
	}
	gp.cells = g.Fill(gp.cells)
	fillBinaryRGBA(gp.buf, gp.cells, gp.w, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(offsetX), float64(offsetY))
	dst.DrawImage(gp.img, op)

	vector.StrokeRect(dst, float32(offsetX), float32(offsetY),
		float32(gp.w*scale), float32(gp.h*scale), 2, borderColor, false)
}
