package simulation

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"smithwagnercv/domain/core"
	"smithwagnercv/domain/learning"
)

// ExtractCriticalValues builds the report of every reported statistic.
//
// For each requested quantile q the column's interpolated q-quantile is a
// threshold; rows above it are dropped, the rest are ordered by the statistic
// descending and mu ascending, and the first row's value is reported. The
// reported value is therefore an observed value, and ties at the boundary
// resolve to the row with the smallest mu. The mu quantiles at the
// confInterval points are shared by all four reports.
func ExtractCriticalValues(table *ResultTable, criticalValues, confInterval []float64) (learning.CellReports, error) {
	if table.Len() == 0 {
		return nil, core.ErrEmptyTable
	}
	if err := learning.ValidateQuantiles(criticalValues); err != nil {
		return nil, err
	}
	if err := learning.ValidateQuantiles(confInterval); err != nil {
		return nil, err
	}

	muColumn, err := table.Column(learning.ColumnMuHat)
	if err != nil {
		return nil, err
	}
	muCI, err := quantiles(muColumn, confInterval)
	if err != nil {
		return nil, err
	}

	reports := make(learning.CellReports, len(learning.ReportedStatistics))
	for _, name := range learning.ReportedStatistics {
		column, err := table.Column(name)
		if err != nil {
			return nil, err
		}

		cvs, err := criticalValuesFor(table, name, column, criticalValues)
		if err != nil {
			return nil, err
		}

		summary, err := Summarize(column)
		if err != nil {
			return nil, fmt.Errorf("summarize %s: %w", name, err)
		}

		reports[name] = learning.CriticalValueReport{
			Statistic:      name,
			Mu:             table.Mu,
			ClassSize:      table.ClassSize,
			CriticalValues: cvs,
			MuCI:           slices.Clone(muCI),
			Summary:        summary,
		}
	}
	return reports, nil
}

func quantiles(column []float64, points []float64) ([]learning.QuantileValue, error) {
	sorted := slices.Clone(column)
	slices.Sort(sorted)

	out := make([]learning.QuantileValue, 0, len(points))
	for _, p := range points {
		if len(sorted) == 0 {
			return nil, core.ErrEmptyTable
		}
		out = append(out, learning.QuantileValue{Quantile: p, Value: quantileSorted(sorted, p)})
	}
	return out, nil
}

type candidate struct {
	value float64
	muHat float64
}

func criticalValuesFor(table *ResultTable, name learning.StatisticName, column []float64, points []float64) ([]learning.CriticalValue, error) {
	sorted := slices.Clone(column)
	slices.Sort(sorted)

	out := make([]learning.CriticalValue, 0, len(points))
	for _, q := range points {
		threshold := quantileSorted(sorted, q)

		kept := make([]candidate, 0, len(column))
		for i, v := range column {
			if v <= threshold {
				kept = append(kept, candidate{value: v, muHat: table.Rows[i].MuHat})
			}
		}
		if len(kept) == 0 {
			return nil, fmt.Errorf("%w: %s at q=%v (threshold %v)", core.ErrNoCriticalRow, name, q, threshold)
		}

		slices.SortStableFunc(kept, func(a, b candidate) int {
			if c := cmp.Compare(b.value, a.value); c != 0 {
				return c
			}
			return cmp.Compare(a.muHat, b.muHat)
		})

		out = append(out, learning.CriticalValue{
			Quantile:  q,
			Threshold: threshold,
			Value:     kept[0].value,
			MuHat:     kept[0].muHat,
		})
	}
	return out, nil
}

// finite drops infinite and NaN values
func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
