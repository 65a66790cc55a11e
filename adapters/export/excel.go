package export

import (
	"fmt"
	"math"

	"smithwagnercv/domain/learning"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// ExportWorkbook writes all four statistic tables into one workbook, one sheet per statistic
func ExportWorkbook(path string, reports map[learning.StatisticName][]learning.CriticalValueReport) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range learning.ReportedStatistics {
		sheet := string(name)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}

		if err := writeSheet(f, sheet, reports[name]); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, reports []learning.CriticalValueReport) error {
	header := Header(reports)
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return fmt.Errorf("write header of sheet %s: %w", sheet, err)
	}

	for i, r := range reports {
		values := Values(i, r)
		for j, v := range values {
			// Infinity has no spreadsheet representation
			if x, ok := v.(float64); ok && (math.IsInf(x, 0) || math.IsNaN(x)) {
				values[j] = FormatFloat(x)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d of sheet %s: %w", i, sheet, err)
		}
	}
	return nil
}
