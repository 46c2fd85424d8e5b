package app

import (
	"errors"
	"flag"
	"fmt"

	"lifeboard/internal/engine"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	Speed   float64
	Pattern string
	Density float64
	Seed    int64
	Paused  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 60, Height: 40, Scale: 16, TPS: 60, Speed: 1, Density: 0.3, Paused: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "generations per second")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern (glider, beacon, blinker, toad, test, random)")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for random fills")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills (0 uses the clock)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// Validate reports every setting that cannot start a session.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.Speed <= 0 {
		errs = append(errs, fmt.Errorf("speed %g must be positive", c.Speed))
	}
	return errors.Join(errs...)
}

// Session builds a session from the configuration and applies the initial
// pattern, if any.
func (c *Config) Session() (*engine.Session, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := engine.New(engine.Options{
		Width:   c.Width,
		Height:  c.Height,
		Speed:   c.Speed,
		Paused:  c.Paused,
		Seed:    c.Seed,
		Density: c.Density,
	})
	if c.Pattern != "" {
		if err := s.Seed(c.Pattern); err != nil {
			return nil, err
		}
	}
	return s, nil
}
