package simulation

import (
	"smithwagnercv/domain/learning"

	"github.com/montanaflynn/stats"
)

// Summarize describes the finite part of a statistic column
func Summarize(column []float64) (learning.DistributionSummary, error) {
	data := finite(column)
	summary := learning.DistributionSummary{
		Count:    len(data),
		Infinite: len(column) - len(data),
	}
	if len(data) == 0 {
		return summary, nil
	}

	var err error
	if summary.Mean, err = stats.Mean(data); err != nil {
		return summary, err
	}
	if summary.StdDev, err = stats.StandardDeviation(data); err != nil {
		return summary, err
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return summary, err
	}
	if summary.Min, err = stats.Min(data); err != nil {
		return summary, err
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return summary, err
	}
	return summary, nil
}
