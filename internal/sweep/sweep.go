// Package sweep measures how random boards of different densities evolve.
package sweep

import (
	"context"
	"errors"
	"fmt"

	"lifeboard/pkg/life"
	"lifeboard/pkg/patterns"

	"golang.org/x/sync/errgroup"
)

// Params describes a sweep.
type Params struct {
	Width     int
	Height    int
	Steps     int
	Trials    int
	Seed      int64
	Workers   int
	Densities []float64
}

// Result aggregates every trial for one density.
type Result struct {
	Density        float64
	MeanInitial    float64
	MeanFinal      float64
	Extinct        int
	Trials         int
	MeanGeneration float64
}

// Survival is the mean final population as a fraction of the mean initial one.
func (r Result) Survival() float64 {
	if r.MeanInitial == 0 {
		return 0
	}
	return r.MeanFinal / r.MeanInitial
}

func (r Result) String() string {
	return fmt.Sprintf("density=%.2f initial=%.1f final=%.1f survival=%.3f extinct=%d/%d",
		r.Density, r.MeanInitial, r.MeanFinal, r.Survival(), r.Extinct, r.Trials)
}

type trial struct {
	initial int
	final   int
	gen     uint64
}

// Validate reports parameters that cannot produce a sweep.
func (p Params) Validate() error {
	var errs []error
	if p.Width <= 0 || p.Height <= 0 {
		errs = append(errs, fmt.Errorf("board %dx%d must be positive", p.Width, p.Height))
	}
	if p.Steps < 0 {
		errs = append(errs, fmt.Errorf("steps %d must not be negative", p.Steps))
	}
	if p.Trials <= 0 {
		errs = append(errs, fmt.Errorf("trials %d must be positive", p.Trials))
	}
	if len(p.Densities) == 0 {
		errs = append(errs, errors.New("no densities to sweep"))
	}
	return errors.Join(errs...)
}

// Run evaluates every density/trial pair in parallel. Trial t of every
// density uses seed Seed+t, so results are reproducible.
func Run(ctx context.Context, p Params) ([]Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	trials := make([][]trial, len(p.Densities))
	for i := range trials {
		trials[i] = make([]trial, p.Trials)
	}

	g, ctx := errgroup.WithContext(ctx)
	if p.Workers > 0 {
		g.SetLimit(p.Workers)
	}
	for di, density := range p.Densities {
		for t := 0; t < p.Trials; t++ {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				trials[di][t] = runTrial(p, density, p.Seed+int64(t))
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, len(p.Densities))
	for di, density := range p.Densities {
		res := Result{Density: density, Trials: p.Trials}
		for _, tr := range trials[di] {
			res.MeanInitial += float64(tr.initial)
			res.MeanFinal += float64(tr.final)
			res.MeanGeneration += float64(tr.gen)
			if tr.final == 0 {
				res.Extinct++
			}
		}
		n := float64(p.Trials)
		res.MeanInitial /= n
		res.MeanFinal /= n
		res.MeanGeneration /= n
		results[di] = res
	}
	return results, nil
}

func runTrial(p Params, density float64, seed int64) trial {
	grid := life.New(p.Width, p.Height)
	patterns.NewManager(patterns.WithSeed(seed)).ApplyRandom(grid, density)
	tr := trial{initial: grid.Population()}
	for i := 0; i < p.Steps && grid.Population() > 0; i++ {
		grid.Step()
	}
	tr.final = grid.Population()
	tr.gen = grid.Generation()
	return tr
}
