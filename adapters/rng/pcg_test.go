package rng

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draws(t *testing.T, a *PCGAdapter, batch string, trial, n int) []uint64 {
	t.Helper()
	src, err := a.Stream(context.Background(), batch, trial)
	require.NoError(t, err)
	r := rand.New(src)
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.Uint64()
	}
	return out
}

func TestPCGAdapter_SeededStreamsAreReproducible(t *testing.T) {
	a := NewPCGAdapter(42)
	b := NewPCGAdapter(42)

	assert.True(t, a.Deterministic())
	assert.Equal(t, draws(t, a, "cs=10/mu=0.5", 3, 8), draws(t, b, "cs=10/mu=0.5", 3, 8))
}

func TestPCGAdapter_StreamsDifferAcrossTrialsAndBatches(t *testing.T) {
	a := NewPCGAdapter(42)

	base := draws(t, a, "cs=10/mu=0.5", 0, 8)
	assert.NotEqual(t, base, draws(t, a, "cs=10/mu=0.5", 1, 8))
	assert.NotEqual(t, base, draws(t, a, "cs=20/mu=0.5", 0, 8))
	assert.NotEqual(t, base, draws(t, NewPCGAdapter(43), "cs=10/mu=0.5", 0, 8))
}

func TestPCGAdapter_ZeroSeedUsesEntropy(t *testing.T) {
	a := NewPCGAdapter(0)

	assert.False(t, a.Deterministic())
	assert.NotEqual(t, draws(t, a, "batch", 0, 4), draws(t, a, "batch", 0, 4))
}

func TestPCGAdapter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPCGAdapter(1).Stream(ctx, "batch", 0)
	assert.ErrorIs(t, err, context.Canceled)
}
