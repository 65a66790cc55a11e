package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"smithwagnercv/domain/learning"
)

// ExportGrid writes one <statistic>Results.csv per reported statistic into
// dir and returns the written paths in statistic order.
func ExportGrid(dir string, reports map[learning.StatisticName][]learning.CriticalValueReport) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(learning.ReportedStatistics))
	for _, name := range learning.ReportedStatistics {
		path := filepath.Join(dir, ResultsFileName(name))
		if err := WriteCSV(path, reports[name]); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteCSV writes the reports of one statistic, one row per grid cell
func WriteCSV(path string, reports []learning.CriticalValueReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header(reports)); err != nil {
		return fmt.Errorf("write header to %s: %w", path, err)
	}
	for i, r := range reports {
		if err := w.Write(Record(i, r)); err != nil {
			return fmt.Errorf("write row %d to %s: %w", i, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
