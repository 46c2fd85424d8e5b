package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Wrap adopts an existing rand.Rand, for callers that manage their own source.
func Wrap(r *rand.Rand) *RNG {
	return &RNG{r: r}
}

// NewClockRNG seeds an RNG from the wall clock. Seed 0 is treated the same way
// by drivers that take a seed flag.
func NewClockRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Chance reports true with probability p. p <= 0 never fires, p >= 1 always does.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
