//go:build ebiten

package ui

import (
	"image/color"

	"lifeboard/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var hoverColor = color.RGBA{R: 64, G: 164, B: 223, A: 255}

// Overlay outlines the cell under the pointer.
type Overlay struct {
	size  core.Size
	scale int
	show  bool

	hoverX, hoverY int
	hovering       bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(size core.Size, scale int) *Overlay {
	return &Overlay{size: size, scale: scale, show: true}
}

// Update follows the pointer. H toggles the highlight.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
	px, py := ebiten.CursorPosition()
	o.hoverX, o.hoverY, o.hovering = CellAt(px, py, o.scale, o.size)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || !o.hovering || o.scale <= 0 {
		return
	}
	x := float32(GridOrigin.X + o.hoverX*o.scale)
	y := float32(GridOrigin.Y + o.hoverY*o.scale)
	s := float32(o.scale)
	vector.StrokeRect(screen, x, y, s, s, 1, hoverColor, false)
}
