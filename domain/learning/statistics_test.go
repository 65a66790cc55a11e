package learning

import (
	"errors"
	"math"
	"testing"

	"smithwagnercv/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatistics(t *testing.T) {
	tests := []struct {
		name       string
		input      TrialResult
		numOptions int
		want       TrialStatistics
	}{
		{
			name:       "four options mixed class",
			input:      TrialResult{PL: 0.5, NL: 0.1, ZL: 0.2, RL: 0.2},
			numOptions: 4,
			want: TrialStatistics{
				Gamma: 26.0 / 45.0,
				Alpha: 2.0 / 45.0,
				MuHat: 1.0 / 15.0,
				Flow:  8.0 / 15.0,
				Gain:  13.0 / 21.0,
			},
		},
		{
			name:       "two options has unit denominator",
			input:      TrialResult{PL: 0.25, NL: 0.25, ZL: 0.25, RL: 0.25},
			numOptions: 2,
			want:       TrialStatistics{Gamma: 0, Alpha: 0, MuHat: 0, Flow: 0, Gain: 0},
		},
		{
			name:       "nobody learns and nobody knows",
			input:      TrialResult{ZL: 1},
			numOptions: 4,
			want: TrialStatistics{
				Gamma: -4.0 / 9.0,
				Alpha: -4.0 / 9.0,
				MuHat: -1.0 / 3.0,
				Flow:  0,
				Gain:  (-4.0 / 9.0) / (4.0 / 3.0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeStatistics(tt.input, tt.numOptions)
			require.NoError(t, err)

			assert.Equal(t, tt.input, got.TrialResult)
			assert.InDelta(t, tt.want.Gamma, got.Gamma, 1e-12, "gamma")
			assert.InDelta(t, tt.want.Alpha, got.Alpha, 1e-12, "alpha")
			assert.InDelta(t, tt.want.MuHat, got.MuHat, 1e-12, "mu")
			assert.InDelta(t, tt.want.Flow, got.Flow, 1e-12, "flow")
			assert.InDelta(t, tt.want.Gain, got.Gain, 1e-12, "gain")
		})
	}
}

func TestComputeStatistics_GainInfiniteWhenMuIsOne(t *testing.T) {
	for _, r := range []TrialResult{{RL: 1}, {NL: 0.5, RL: 0.5}, {NL: 1}} {
		got, err := ComputeStatistics(r, 4)
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.MuHat)
		assert.True(t, math.IsInf(got.Gain, 1), "gain should be +Inf for %+v", r)
	}

	got, err := ComputeStatistics(TrialResult{PL: 0.2, RL: 0.8}, 4)
	require.NoError(t, err)
	assert.NotEqual(t, 1.0, got.MuHat)
	assert.False(t, math.IsInf(got.Gain, 0))
}

func TestComputeStatistics_RejectsTooFewOptions(t *testing.T) {
	for _, k := range []int{1, 0, -3} {
		_, err := ComputeStatistics(TrialResult{PL: 1}, k)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrInvalidParameter))
		assert.True(t, errors.Is(err, core.ErrNumOptions))
	}
}

func TestTrialStatistics_Value(t *testing.T) {
	row := TrialStatistics{
		TrialResult: TrialResult{PL: 0.1, NL: 0.2, ZL: 0.3, RL: 0.4},
		Gamma:       1, Alpha: 2, MuHat: 3, Flow: 4, Gain: 5,
	}
	want := []float64{0.1, 0.2, 0.3, 0.4, 1, 2, 3, 4, 5}

	for i, col := range Columns {
		v, err := row.Value(col)
		require.NoError(t, err)
		assert.Equal(t, want[i], v, string(col))
	}

	_, err := row.Value("beta")
	assert.ErrorIs(t, err, core.ErrUnknownStatistic)
}

func TestStatisticName_IsReported(t *testing.T) {
	assert.True(t, Gamma.IsReported())
	assert.True(t, Gain.IsReported())
	assert.False(t, ColumnMuHat.IsReported())
	assert.False(t, ColumnPL.IsReported())
}
