package simulation

import (
	"math"
	"slices"

	"smithwagnercv/domain/core"
)

// Quantile returns the q-quantile of values using linear interpolation
// between the closest ranks, h = (n-1)q. values is not modified.
func Quantile(values []float64, q float64) (float64, error) {
	if len(values) == 0 {
		return math.NaN(), core.ErrEmptyTable
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return quantileSorted(sorted, q), nil
}

func quantileSorted(sorted []float64, q float64) float64 {
	n := len(sorted)
	h := float64(n-1) * q
	lo := int(math.Floor(h))
	if lo < 0 {
		lo = 0
	}
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return lerp(sorted[lo], sorted[lo+1], frac)
}

// lerp interpolates from the nearer endpoint to keep the result within [a, b]
func lerp(a, b, t float64) float64 {
	if t == 0 || a == b {
		return a
	}
	if math.IsInf(b, 1) {
		return b
	}
	diff := b - a
	if t >= 0.5 {
		return b - diff*(1-t)
	}
	return a + diff*t
}
