package rng

import (
	"context"
	"math/rand/v2"
)

// PCGAdapter implements ports.RNGPort with one PCG stream per trial.
// A zero seed draws every stream from process entropy; any other seed
// makes a trial's stream a pure function of (seed, batch, trial), so
// results do not depend on how trials are scheduled across workers.
type PCGAdapter struct {
	seed uint64
}

// NewPCGAdapter creates an adapter; seed 0 means non-deterministic
func NewPCGAdapter(seed uint64) *PCGAdapter {
	return &PCGAdapter{seed: seed}
}

// Seed returns the configured base seed
func (a *PCGAdapter) Seed() uint64 {
	return a.seed
}

// Deterministic reports whether streams are reproducible
func (a *PCGAdapter) Deterministic() bool {
	return a.seed != 0
}

// Stream returns an independent source for one trial
func (a *PCGAdapter) Stream(ctx context.Context, batch string, trial int) (rand.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64()), nil
	}
	hi := mix(a.seed ^ hashString(batch))
	lo := mix(hi + uint64(trial)*0x9e3779b97f4a7c15)
	return rand.NewPCG(hi, lo), nil
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint64 {
	var hash uint64 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint64(c) // djb2 algorithm
	}
	return hash
}

// mix is the splitmix64 finalizer
func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
