package export

import (
	"math"
	"strconv"

	"smithwagnercv/domain/learning"
)

// ResultsFileName returns the CSV file name of one statistic, e.g. gammaResults.csv
func ResultsFileName(name learning.StatisticName) string {
	return string(name) + "Results.csv"
}

// Header flattens the report layout into column names. The quantile columns
// follow the first report; every report of a grid shares the same points.
func Header(reports []learning.CriticalValueReport) []string {
	header := []string{"", "mu", "classSize"}
	if len(reports) > 0 {
		for _, cv := range reports[0].CriticalValues {
			header = append(header, "criticalValues_"+FormatFloat(cv.Quantile))
		}
		for _, ci := range reports[0].MuCI {
			header = append(header, "muCI_"+FormatFloat(ci.Quantile))
		}
	}
	return append(header, "count", "infinite", "mean", "stdDev", "median", "min", "max")
}

// Values returns the typed cells of one row; index is the zero-based row number
func Values(index int, r learning.CriticalValueReport) []interface{} {
	values := []interface{}{index, r.Mu, r.ClassSize}
	for _, cv := range r.CriticalValues {
		values = append(values, cv.Value)
	}
	for _, ci := range r.MuCI {
		values = append(values, ci.Value)
	}
	s := r.Summary
	return append(values, s.Count, s.Infinite, s.Mean, s.StdDev, s.Median, s.Min, s.Max)
}

// Record formats one row for a delimited file
func Record(index int, r learning.CriticalValueReport) []string {
	values := Values(index, r)
	record := make([]string, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case int:
			record[i] = strconv.Itoa(x)
		case float64:
			record[i] = FormatFloat(x)
		}
	}
	return record
}

// FormatFloat uses the shortest representation and spells infinities as inf/-inf
func FormatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
