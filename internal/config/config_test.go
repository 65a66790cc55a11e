package config

import (
	"testing"

	"smithwagnercv/domain/core"
	apperrors "smithwagnercv/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SWCV_NUM_OPTIONS", "SWCV_REPETITIONS", "SWCV_CRITICAL_VALUES", "SWCV_CONF_INTERVAL",
		"SWCV_WORKERS", "SWCV_SEED", "SWCV_OUTPUT_DIR", "SWCV_WORKBOOK",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Simulation.NumOptions)
	assert.Equal(t, 10000, cfg.Simulation.Repetitions)
	assert.Equal(t, []float64{0.90, 0.95}, cfg.Simulation.CriticalValues)
	assert.Equal(t, []float64{0.025, 0.975}, cfg.Simulation.ConfInterval)
	assert.Greater(t, cfg.Simulation.Workers, 0)
	assert.Equal(t, uint64(0), cfg.Simulation.Seed)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.False(t, cfg.Output.Workbook)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SWCV_NUM_OPTIONS", "5")
	t.Setenv("SWCV_REPETITIONS", "2500")
	t.Setenv("SWCV_CRITICAL_VALUES", "0.8, 0.99")
	t.Setenv("SWCV_CONF_INTERVAL", "0.05,0.95")
	t.Setenv("SWCV_WORKERS", "3")
	t.Setenv("SWCV_SEED", "99")
	t.Setenv("SWCV_OUTPUT_DIR", "/tmp/out")
	t.Setenv("SWCV_WORKBOOK", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Simulation.NumOptions)
	assert.Equal(t, 2500, cfg.Simulation.Repetitions)
	assert.Equal(t, []float64{0.8, 0.99}, cfg.Simulation.CriticalValues)
	assert.Equal(t, []float64{0.05, 0.95}, cfg.Simulation.ConfInterval)
	assert.Equal(t, 3, cfg.Simulation.Workers)
	assert.Equal(t, uint64(99), cfg.Simulation.Seed)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	assert.True(t, cfg.Output.Workbook)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"single answer option", "SWCV_NUM_OPTIONS", "1"},
		{"quantile of one", "SWCV_CRITICAL_VALUES", "0.9,1"},
		{"garbage interval", "SWCV_CONF_INTERVAL", "low,high"},
		{"negative seed", "SWCV_SEED", "-4"},
		{"no workers", "SWCV_WORKERS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, apperrors.CodeConfigInvalid, apperrors.GetCode(err))
		})
	}
}

func TestLoad_InvalidKeepsDomainCause(t *testing.T) {
	t.Setenv("SWCV_NUM_OPTIONS", "1")

	_, err := Load()
	assert.ErrorIs(t, err, core.ErrNumOptions)
}

func TestParseFloatList(t *testing.T) {
	got, err := ParseFloatList(" 0.1 ,0.2,,0.3 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, got)

	_, err = ParseFloatList(" , ")
	assert.Error(t, err)

	_, err = ParseFloatList("0.1,x")
	assert.Error(t, err)
}
