package patterns

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"lifeboard/pkg/core"
)

var (
	// ErrPatternNotFound is returned when a name is absent from the registry.
	ErrPatternNotFound = errors.New("pattern not found")
	// ErrPatternDoesNotFit is returned when placement would leave the board.
	ErrPatternDoesNotFit = errors.New("pattern does not fit")
	// ErrRaggedMask is returned for masks whose rows differ in length.
	ErrRaggedMask = errors.New("pattern mask is not rectangular")
	// ErrUnsupported is returned by the pattern file hooks.
	ErrUnsupported = fmt.Errorf("pattern files: %w", errors.ErrUnsupported)
)

// Reserved names handled by Apply without a registry lookup.
const (
	NameRandom = "random"
	NameClear  = "clear"
)

// DefaultDensity is the live-cell probability used by Apply("random").
const DefaultDensity = 0.3

// Board is the part of a grid a Manager writes through.
type Board interface {
	Width() int
	Height() int
	Set(x, y int, alive bool)
	Clear()
}

// Manager owns a registry of named patterns and seeds boards from it.
type Manager struct {
	patterns map[string]Pattern
	rng      *core.RNG
}

// Option configures a Manager.
type Option func(*Manager)

// WithRand makes random fills draw from r.
func WithRand(r *rand.Rand) Option {
	return func(m *Manager) {
		if r != nil {
			m.rng = core.Wrap(r)
		}
	}
}

// WithSeed makes random fills deterministic for the given seed.
func WithSeed(seed int64) Option {
	return func(m *Manager) {
		m.rng = core.NewRNG(seed)
	}
}

// NewManager returns a Manager with the built-in patterns registered.
func NewManager(opts ...Option) *Manager {
	m := &Manager{patterns: make(map[string]Pattern)}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = core.NewClockRNG()
	}
	for _, p := range builtins() {
		m.Register(p)
	}
	return m
}

// Register stores p under p.Name, replacing any previous entry.
func (m *Manager) Register(p Pattern) {
	m.patterns[p.Name] = p
}

// RegisterMask builds a pattern from mask and registers it under name.
func (m *Manager) RegisterMask(name, description string, mask [][]bool) error {
	p, err := NewPattern(name, description, mask)
	if err != nil {
		return err
	}
	m.Register(p)
	return nil
}

// Has reports whether name is registered.
func (m *Manager) Has(name string) bool {
	_, ok := m.patterns[name]
	return ok
}

// Names returns the registered pattern names in sorted order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.patterns))
	for name := range m.patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Get returns the pattern registered under name.
func (m *Manager) Get(name string) (Pattern, error) {
	p, ok := m.patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrPatternNotFound, name)
	}
	return p, nil
}

// Apply seeds the board with the named pattern. "random" fills the board at
// DefaultDensity and "clear" empties it; any other name clears the board and
// places the pattern in the middle.
func (m *Manager) Apply(b Board, name string) error {
	switch name {
	case NameRandom:
		m.ApplyRandom(b, DefaultDensity)
		return nil
	case NameClear:
		m.Clear(b)
		return nil
	}
	if !m.Has(name) {
		return fmt.Errorf("%w: %q", ErrPatternNotFound, name)
	}
	m.Clear(b)
	return m.ApplyCentered(b, name)
}

// ApplyRandom clears the board and then revives each cell independently with
// probability density.
func (m *Manager) ApplyRandom(b Board, density float64) {
	m.Clear(b)
	w, h := b.Width(), b.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.rng.Chance(density) {
				b.Set(x, y, true)
			}
		}
	}
}

// Clear kills every cell on the board.
func (m *Manager) Clear(b Board) {
	b.Clear()
}

// ApplyAt overlays the named pattern with its top-left corner at (x, y). Only
// live mask cells are written; everything else on the board is left alone.
func (m *Manager) ApplyAt(b Board, name string, x, y int) error {
	p, err := m.Get(name)
	if err != nil {
		return err
	}
	if !fits(b, p, x, y) {
		return fmt.Errorf("%w: %q (%dx%d) at (%d,%d) on %dx%d board",
			ErrPatternDoesNotFit, name, p.Width, p.Height, x, y, b.Width(), b.Height())
	}
	place(b, p, x, y)
	return nil
}

// ApplyCentered overlays the named pattern in the middle of the board,
// rounding the offset down. A pattern larger than the board does not fit.
func (m *Manager) ApplyCentered(b Board, name string) error {
	p, err := m.Get(name)
	if err != nil {
		return err
	}
	x, y := (b.Width()-p.Width)/2, (b.Height()-p.Height)/2
	if !fits(b, p, x, y) {
		return fmt.Errorf("%w: %q (%dx%d) is larger than the %dx%d board",
			ErrPatternDoesNotFit, name, p.Width, p.Height, b.Width(), b.Height())
	}
	place(b, p, x, y)
	return nil
}

// Load is reserved for reading pattern files.
func (m *Manager) Load(path string) error {
	return fmt.Errorf("load %s: %w", path, ErrUnsupported)
}

// Save is reserved for writing pattern files.
func (m *Manager) Save(name, path string) error {
	return fmt.Errorf("save %q to %s: %w", name, path, ErrUnsupported)
}

func fits(b Board, p Pattern, x, y int) bool {
	return x >= 0 && y >= 0 && x+p.Width <= b.Width() && y+p.Height <= b.Height()
}

func place(b Board, p Pattern, x0, y0 int) {
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if p.cells[y][x] {
				b.Set(x0+x, y0+y, true)
			}
		}
	}
}
