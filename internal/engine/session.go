package engine

import (
	"errors"
	"fmt"
	"time"

	"lifeboard/internal/core"
	"lifeboard/pkg/life"
	"lifeboard/pkg/patterns"
)

// ErrQuit is returned by Do when the user asked to leave.
var ErrQuit = errors.New("quit requested")

// Options configures a new Session.
type Options struct {
	Width   int
	Height  int
	Speed   float64
	Paused  bool
	Seed    int64
	Density float64
}

// Session owns one board, its pattern registry and the generation clock.
// It is driven from a single goroutine.
type Session struct {
	grid     *life.Grid
	patterns *patterns.Manager
	pacer    *core.Pacer
	paused   bool
	density  float64
}

// New creates a session. A zero seed draws random fills from the clock.
// Density is used as given, so a density of zero or below seeds an empty board.
func New(opts Options) *Session {
	var popts []patterns.Option
	if opts.Seed != 0 {
		popts = append(popts, patterns.WithSeed(opts.Seed))
	}
	return &Session{
		grid:     life.New(opts.Width, opts.Height),
		patterns: patterns.NewManager(popts...),
		pacer:    core.NewPacer(opts.Speed),
		paused:   opts.Paused,
		density:  opts.Density,
	}
}

// Grid exposes the board for rendering.
func (s *Session) Grid() *life.Grid { return s.grid }

// Patterns exposes the pattern registry.
func (s *Session) Patterns() *patterns.Manager { return s.patterns }

// Size returns the board dimensions.
func (s *Session) Size() core.Size {
	return core.Size{W: s.grid.Width(), H: s.grid.Height()}
}

// Paused reports whether generations are on hold.
func (s *Session) Paused() bool { return s.paused }

// Pause holds the simulation.
func (s *Session) Pause() { s.paused = true }

// Resume restarts the simulation with a fresh interval starting at now.
func (s *Session) Resume(now time.Time) {
	s.paused = false
	s.pacer.Restart(now)
}

// TogglePause flips between paused and running.
func (s *Session) TogglePause(now time.Time) {
	if s.paused {
		s.Resume(now)
		return
	}
	s.Pause()
}

// Speed returns the generation rate.
func (s *Session) Speed() float64 { return s.pacer.Speed() }

// Faster raises the generation rate. It has no effect while paused.
func (s *Session) Faster() {
	if !s.paused {
		s.pacer.Faster()
	}
}

// Slower lowers the generation rate. It has no effect while paused.
func (s *Session) Slower() {
	if !s.paused {
		s.pacer.Slower()
	}
}

// Seed applies the named pattern, "random" or "clear" to the board. Random
// fills use the session density rather than the registry default.
func (s *Session) Seed(name string) error {
	if name == patterns.NameRandom {
		s.patterns.ApplyRandom(s.grid, s.density)
		return nil
	}
	if err := s.patterns.Apply(s.grid, name); err != nil {
		return fmt.Errorf("seed board: %w", err)
	}
	return nil
}

// Clear empties the board.
func (s *Session) Clear() { s.patterns.Clear(s.grid) }

// ToggleCell flips a single cell; coordinates off the board are ignored.
func (s *Session) ToggleCell(x, y int) { s.grid.Toggle(x, y) }

// StepOnce advances one generation regardless of the pause state.
func (s *Session) StepOnce() { s.grid.Step() }

// Tick advances one generation when running and the interval has elapsed.
// It reports whether the board changed.
func (s *Session) Tick(now time.Time) bool {
	if s.paused || !s.pacer.Due(now) {
		return false
	}
	s.grid.Step()
	return true
}

// Status summarises the session.
func (s *Session) Status() core.Status {
	return core.Status{
		Generation: s.grid.Generation(),
		Population: s.grid.Population(),
		Speed:      s.pacer.Speed(),
		Paused:     s.paused,
	}
}

// Do performs a user action. ActionQuit returns ErrQuit.
func (s *Session) Do(a Action, now time.Time) error {
	switch a {
	case ActionPause:
		s.TogglePause(now)
	case ActionFaster:
		s.Faster()
	case ActionSlower:
		s.Slower()
	case ActionRandom:
		return s.Seed(patterns.NameRandom)
	case ActionGlider:
		return s.Seed("glider")
	case ActionTest:
		return s.Seed("test")
	case ActionClear:
		s.Clear()
	case ActionStep:
		s.StepOnce()
	case ActionQuit:
		return ErrQuit
	}
	return nil
}
