package ports

import (
	"context"
	"math/rand/v2"
)

// RNGPort provides random sources for simulation trials
type RNGPort interface {
	// Stream returns an independent source for one trial of a named batch.
	// Sources are never shared between trials, so callers may use them
	// from separate goroutines without locking.
	Stream(ctx context.Context, batch string, trial int) (rand.Source, error)
}
