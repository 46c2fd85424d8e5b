//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifeboard/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	barBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	buttonFill    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonHover   = color.RGBA{R: 84, G: 88, B: 100, A: 255}
	buttonText    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	statusText    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the button bar and the status line above the grid.
type HUD struct {
	bar   *Bar
	width int
}

// NewHUD constructs a HUD spanning width logical pixels.
func NewHUD(bar *Bar, width int) *HUD {
	if width < bar.Width() {
		width = bar.Width()
	}
	return &HUD{bar: bar, width: width}
}

// Update tracks the pointer for hover feedback and keeps labels current.
func (h *HUD) Update(st core.Status) {
	if h == nil {
		return
	}
	x, y := ebiten.CursorPosition()
	h.bar.Hover(x, y)
	h.bar.SyncPaused(st.Paused)
}

// Draw paints the bar across the top of the screen.
func (h *HUD) Draw(screen *ebiten.Image, st core.Status) {
	if h == nil {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), BarHeight, barBackground, false)
	for _, btn := range h.bar.Buttons {
		drawButton(screen, btn)
	}

	face := basicfont.Face7x13
	line := fmt.Sprintf("gen %d  pop %d  %.2f gen/s", st.Generation, st.Population, st.Speed)
	if st.Paused {
		line += "  [paused]"
	}
	x := h.bar.Width() + BarMargin
	y := BarMargin + (ButtonHeight+face.Ascent)/2
	text.Draw(screen, line, face, x, y, statusText)
}

func drawButton(screen *ebiten.Image, btn Button) {
	bg := buttonFill
	if btn.Hover {
		bg = buttonHover
	}
	r := btn.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, btn.Label)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, btn.Label, face, x, y, buttonText)
}
