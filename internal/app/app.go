//go:build ebiten

package app

import (
	"errors"
	"log"
	"time"

	"lifeboard/internal/engine"
	"lifeboard/internal/render"
	"lifeboard/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings are checked in order, so keys pressed in the same frame apply
// deterministically.
var keyBindings = []struct {
	key    ebiten.Key
	action engine.Action
}{
	{ebiten.KeySpace, engine.ActionPause},
	{ebiten.KeyR, engine.ActionRandom},
	{ebiten.KeyG, engine.ActionGlider},
	{ebiten.KeyT, engine.ActionTest},
	{ebiten.KeyC, engine.ActionClear},
	{ebiten.KeyEqual, engine.ActionFaster},
	{ebiten.KeyNumpadAdd, engine.ActionFaster},
	{ebiten.KeyMinus, engine.ActionSlower},
	{ebiten.KeyNumpadSubtract, engine.ActionSlower},
	{ebiten.KeyN, engine.ActionStep},
	{ebiten.KeyQ, engine.ActionQuit},
	{ebiten.KeyEscape, engine.ActionQuit},
}

func pressedActions(pressed func(ebiten.Key) bool) []engine.Action {
	var actions []engine.Action
	for _, b := range keyBindings {
		if pressed(b.key) {
			actions = append(actions, b.action)
		}
	}
	return actions
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *engine.Session
	painter *render.GridPainter
	bar     *ui.Bar
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
}

// New constructs a Game for the provided session.
func New(s *engine.Session, scale int) *Game {
	size := s.Size()
	bar := ui.NewBar()
	w, _ := ui.ScreenSize(size, scale)
	return &Game{
		session: s,
		painter: render.NewGridPainter(size.W, size.H),
		bar:     bar,
		hud:     ui.NewHUD(bar, w),
		overlay: ui.NewOverlay(size, scale),
		scale:   scale,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	now := time.Now()
	for _, action := range pressedActions(inpututil.IsKeyJustPressed) {
		if err := g.do(action, now); err != nil {
			return err
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := g.click(now); err != nil {
			return err
		}
	}

	g.hud.Update(g.session.Status())
	g.overlay.Update()
	g.session.Tick(now)
	return nil
}

func (g *Game) click(now time.Time) error {
	px, py := ebiten.CursorPosition()
	if action, ok := g.bar.Hit(px, py); ok {
		return g.do(action, now)
	}
	if x, y, ok := ui.CellAt(px, py, g.scale, g.session.Size()); ok {
		g.session.ToggleCell(x, y)
	}
	return nil
}

func (g *Game) do(action engine.Action, now time.Time) error {
	err := g.session.Do(action, now)
	switch {
	case errors.Is(err, engine.ErrQuit):
		return ebiten.Termination
	case err != nil:
		log.Printf("%s: %v", action, err)
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.DefaultPalette.Odd)
	g.painter.Blit(screen, g.session.Grid(), ui.GridOrigin.X, ui.GridOrigin.Y, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.session.Status())
}

// Layout returns the logical screen size. ebiten scales it into the window
// keeping the aspect ratio and centring it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ui.ScreenSize(g.session.Size(), g.scale)
}
