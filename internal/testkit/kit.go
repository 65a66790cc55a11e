package testkit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"

	"smithwagnercv/adapters/rng"
	"smithwagnercv/domain/learning"
	"smithwagnercv/internal"
	"smithwagnercv/ports"
)

// DefaultSeed is the fixed seed used by deterministic fixtures
const DefaultSeed uint64 = 20180101

// TestKit provides testing utilities and fixtures
type TestKit struct {
	seed uint64
}

// NewTestKit creates a test kit with the default seed
func NewTestKit() *TestKit {
	return &TestKit{seed: DefaultSeed}
}

// NewTestKitWithSeed creates a test kit with an explicit seed
func NewTestKitWithSeed(seed uint64) *TestKit {
	return &TestKit{seed: seed}
}

// RNGAdapter returns a deterministic RNG adapter
func (t *TestKit) RNGAdapter() ports.RNGPort {
	return rng.NewPCGAdapter(t.seed)
}

// Logger returns a logger that discards everything below ERROR
func (t *TestKit) Logger() *internal.Logger {
	return internal.NewLoggerWithWriter(internal.LogLevelError, io.Discard)
}

// ErrInjected is returned by FailingRNGAdapter
var ErrInjected = errors.New("injected rng failure")

// FailingRNGAdapter fails the stream of one trial and serves the rest
type FailingRNGAdapter struct {
	FailTrial int

	mu    sync.Mutex
	calls int
	inner ports.RNGPort
}

// NewFailingRNGAdapter fails on trial failTrial of every batch
func NewFailingRNGAdapter(failTrial int) *FailingRNGAdapter {
	return &FailingRNGAdapter{FailTrial: failTrial, inner: rng.NewPCGAdapter(DefaultSeed)}
}

// Stream implements ports.RNGPort
func (f *FailingRNGAdapter) Stream(ctx context.Context, batch string, trial int) (rand.Source, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if trial == f.FailTrial {
		return nil, fmt.Errorf("%w: batch %s trial %d", ErrInjected, batch, trial)
	}
	return f.inner.Stream(ctx, batch, trial)
}

// Calls returns how many streams were requested
func (f *FailingRNGAdapter) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Row builds a result row with the given statistic value on every reported
// column and the given mu. Proportions are left at zero.
func Row(value, muHat float64) learning.TrialStatistics {
	return learning.TrialStatistics{
		Gamma: value,
		Alpha: value,
		MuHat: muHat,
		Flow:  value,
		Gain:  value,
	}
}

// Rows builds one row per value, all with the same mu
func Rows(muHat float64, values ...float64) []learning.TrialStatistics {
	out := make([]learning.TrialStatistics, len(values))
	for i, v := range values {
		out[i] = Row(v, muHat)
	}
	return out
}
