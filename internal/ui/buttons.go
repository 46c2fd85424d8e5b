package ui

import (
	"image"

	"lifeboard/internal/engine"
)

// Button bar geometry in logical pixels.
const (
	ButtonWidth   = 96
	ButtonHeight  = 28
	ButtonSpacing = 8
	BarMargin     = 6

	// BarHeight is the vertical space reserved above the grid.
	BarHeight = ButtonHeight + 2*BarMargin
)

// Button is a clickable label bound to a session action.
type Button struct {
	Label  string
	Action engine.Action
	Rect   image.Rectangle
	Hover  bool
}

// Bar is the row of control buttons drawn above the grid.
type Bar struct {
	Buttons []Button
}

// NewBar lays out the control buttons left to right.
func NewBar() *Bar {
	specs := []struct {
		label  string
		action engine.Action
	}{
		{"Pause", engine.ActionPause},
		{"Speed+", engine.ActionFaster},
		{"Speed-", engine.ActionSlower},
		{"Random", engine.ActionRandom},
		{"Clear", engine.ActionClear},
	}
	b := &Bar{Buttons: make([]Button, len(specs))}
	for i, s := range specs {
		x := BarMargin + i*(ButtonWidth+ButtonSpacing)
		b.Buttons[i] = Button{
			Label:  s.label,
			Action: s.action,
			Rect:   image.Rect(x, BarMargin, x+ButtonWidth, BarMargin+ButtonHeight),
		}
	}
	return b
}

// Width returns the horizontal space the bar needs.
func (b *Bar) Width() int {
	if len(b.Buttons) == 0 {
		return 0
	}
	return b.Buttons[len(b.Buttons)-1].Rect.Max.X + BarMargin
}

// Hit returns the action of the button under (x, y).
func (b *Bar) Hit(x, y int) (engine.Action, bool) {
	p := image.Pt(x, y)
	for _, btn := range b.Buttons {
		if p.In(btn.Rect) {
			return btn.Action, true
		}
	}
	return engine.ActionNone, false
}

// Hover marks the button under (x, y) and clears the rest.
func (b *Bar) Hover(x, y int) {
	p := image.Pt(x, y)
	for i := range b.Buttons {
		b.Buttons[i].Hover = p.In(b.Buttons[i].Rect)
	}
}

// SyncPaused relabels the pause button to show what a click will do.
func (b *Bar) SyncPaused(paused bool) {
	for i := range b.Buttons {
		if b.Buttons[i].Action != engine.ActionPause {
			continue
		}
		if paused {
			b.Buttons[i].Label = "Resume"
		} else {
			b.Buttons[i].Label = "Pause"
		}
	}
}
