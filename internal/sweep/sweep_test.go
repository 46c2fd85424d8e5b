package sweep

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestRunDeterministic(t *testing.T) {
	p := Params{Width: 24, Height: 24, Steps: 30, Trials: 4, Seed: 17, Workers: 3, Densities: []float64{0.2, 0.5}}
	a, err := Run(context.Background(), p)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	p.Workers = 1
	b, err := Run(context.Background(), p)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !slices.Equal(a, b) {
		t.Fatalf("results depend on scheduling:\n%v\n%v", a, b)
	}
	if len(a) != 2 || a[0].Density != 0.2 || a[1].Density != 0.5 {
		t.Fatalf("results out of order: %v", a)
	}
}

func TestRunExtremes(t *testing.T) {
	p := Params{Width: 10, Height: 10, Steps: 5, Trials: 2, Seed: 1, Densities: []float64{0, 1}}
	res, err := Run(context.Background(), p)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	empty, full := res[0], res[1]
	if empty.MeanInitial != 0 || empty.Extinct != 2 || empty.MeanGeneration != 0 {
		t.Fatalf("empty boards: %v gen=%.1f", empty, empty.MeanGeneration)
	}
	if full.MeanInitial != 100 {
		t.Fatalf("full boards start with %.1f cells", full.MeanInitial)
	}
	// Only the corners of a full board survive the first step, and being
	// isolated they die on the second.
	if full.MeanFinal != 0 || full.Extinct != 2 || full.MeanGeneration != 2 {
		t.Fatalf("full boards: %v gen=%.1f", full, full.MeanGeneration)
	}
	if empty.Survival() != 0 {
		t.Fatal("survival of an empty board is zero")
	}
}

func TestValidate(t *testing.T) {
	err := Params{}.Validate()
	if err == nil {
		t.Fatal("zero params must not validate")
	}
	if _, err := Run(context.Background(), Params{}); err == nil {
		t.Fatal("run must reject invalid params")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := Params{Width: 8, Height: 8, Steps: 1, Trials: 1, Densities: []float64{0.3}}
	if _, err := Run(ctx, p); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
