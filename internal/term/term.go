// Package term runs a session inside a terminal using tcell. Each cell takes
// two columns so the board keeps a roughly square aspect; row 0 holds the
// status line.
package term

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"lifeboard/internal/engine"

	"github.com/gdamore/tcell/v2"
)

const (
	cellColumns = 2
	boardTop    = 1
	frameRate   = 30 * time.Millisecond
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	deadStyle   = tcell.StyleDefault
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// canvas is the part of tcell.Screen the renderer writes to.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Driver feeds terminal events into a session and draws it.
type Driver struct {
	screen  tcell.Screen
	session *engine.Session

	mouseDown bool
}

// New wraps an initialised screen.
func New(screen tcell.Screen, s *engine.Session) *Driver {
	return &Driver{screen: screen, session: s}
}

// Run processes events and redraws until the user quits or ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	d.screen.EnableMouse()
	d.screen.HideCursor()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	d.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := d.handle(ev, time.Now()); err != nil {
				if errors.Is(err, engine.ErrQuit) {
					return nil
				}
				return err
			}
			d.draw()
		case now := <-ticker.C:
			if d.session.Tick(now) {
				d.draw()
			}
		}
	}
}

// handle applies a single terminal event. Seeding failures are logged and
// swallowed; ErrQuit is returned to stop the loop.
func (d *Driver) handle(ev tcell.Event, now time.Time) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := engine.ActionNone
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			action = engine.ActionQuit
		case tcell.KeyRune:
			action = engine.KeyAction(ev.Rune())
		}
		return d.do(action, now)
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !d.mouseDown {
			if x, y, ok := d.cellAt(ev.Position()); ok {
				d.session.ToggleCell(x, y)
			}
		}
		d.mouseDown = pressed
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return nil
}

func (d *Driver) do(action engine.Action, now time.Time) error {
	err := d.session.Do(action, now)
	if err != nil && !errors.Is(err, engine.ErrQuit) {
		log.Printf("%s: %v", action, err)
		return nil
	}
	return err
}

func (d *Driver) cellAt(col, row int) (int, int, bool) {
	if col < 0 || row < boardTop {
		return 0, 0, false
	}
	x, y := col/cellColumns, row-boardTop
	size := d.session.Size()
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

func (d *Driver) draw() {
	d.screen.Clear()
	paint(d.screen, d.session)
	d.screen.Show()
}

// paint writes the status line and every visible cell to c.
func paint(c canvas, s *engine.Session) {
	cols, rows := c.Size()
	st := s.Status()
	status := fmt.Sprintf("gen %d  pop %d  %.2f gen/s", st.Generation, st.Population, st.Speed)
	if st.Paused {
		status += "  [paused]"
	}
	x := putString(c, 0, 0, cols, status, statusStyle)
	putString(c, x+2, 0, cols, "space r g t c + - n q", helpStyle)

	g := s.Grid()
	for y := 0; y < g.Height() && y+boardTop < rows; y++ {
		for gx := 0; gx < g.Width() && gx*cellColumns+1 < cols; gx++ {
			r, style := ' ', deadStyle
			if g.Cell(gx, y) {
				r, style = '█', aliveStyle
			}
			c.SetContent(gx*cellColumns, y+boardTop, r, nil, style)
			c.SetContent(gx*cellColumns+1, y+boardTop, r, nil, style)
		}
	}
}

func putString(c canvas, x, y, limit int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= limit {
			break
		}
		c.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
