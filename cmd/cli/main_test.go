package main

import (
	"bytes"
	"testing"

	"smithwagnercv/domain/learning"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintReports(t *testing.T) {
	reports := learning.CellReports{}
	for _, name := range learning.ReportedStatistics {
		reports[name] = learning.CriticalValueReport{
			Statistic:      name,
			Mu:             0.4,
			ClassSize:      30,
			CriticalValues: []learning.CriticalValue{{Quantile: 0.9, Value: 0.5}, {Quantile: 0.95, Value: 0.75}},
			MuCI:           []learning.QuantileValue{{Quantile: 0.025, Value: 0.1}, {Quantile: 0.975, Value: 0.7}},
		}
	}

	var buf bytes.Buffer
	require.NoError(t, printReports(&buf, reports))

	out := buf.String()
	assert.Contains(t, out, "classSize=30")
	assert.Contains(t, out, "cv@0.95")
	assert.Contains(t, out, "gain")
	assert.Contains(t, out, "mu@0.975")
}

func TestProgressEvery(t *testing.T) {
	assert.Equal(t, 1, progressEvery(4))
	assert.Equal(t, 5, progressEvery(100))
}
