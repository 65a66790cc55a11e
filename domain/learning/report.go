package learning

import "math"

// CriticalValue is the value reported for one requested quantile
type CriticalValue struct {
	Quantile  float64 `json:"quantile"`  // requested quantile, e.g. 0.95
	Threshold float64 `json:"threshold"` // interpolated empirical quantile of the column
	Value     float64 `json:"value"`     // largest observed value at or below Threshold
	MuHat     float64 `json:"mu_hat"`    // mu of the selected row (smallest among ties)
}

// QuantileValue is an empirical quantile of the mu column
type QuantileValue struct {
	Quantile float64 `json:"quantile"`
	Value    float64 `json:"value"`
}

// DistributionSummary describes the finite values of a statistic column.
// Count excludes infinite values, which gain produces when mu == 1.
type DistributionSummary struct {
	Count    int     `json:"count"`
	Infinite int     `json:"infinite"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Median   float64 `json:"median"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// CriticalValueReport is the outcome for one statistic of one (class size, mu) cell
type CriticalValueReport struct {
	Statistic      StatisticName       `json:"statistic"`
	Mu             float64             `json:"mu"`
	ClassSize      int                 `json:"class_size"`
	CriticalValues []CriticalValue     `json:"critical_values"` // in requested order
	MuCI           []QuantileValue     `json:"mu_ci"`           // in requested order
	Summary        DistributionSummary `json:"summary"`
}

// CriticalValue returns the reported value for quantile q
func (r CriticalValueReport) CriticalValue(q float64) (float64, bool) {
	for _, cv := range r.CriticalValues {
		if cv.Quantile == q {
			return cv.Value, true
		}
	}
	return math.NaN(), false
}

// MuBound returns the mu quantile for confidence point p
func (r CriticalValueReport) MuBound(p float64) (float64, bool) {
	for _, ci := range r.MuCI {
		if ci.Quantile == p {
			return ci.Value, true
		}
	}
	return math.NaN(), false
}

// CellReports maps each reported statistic to its report for one cell
type CellReports map[StatisticName]CriticalValueReport
