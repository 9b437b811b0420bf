package experiment

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// resultSheet is the name of the sheet results are exported to
const resultSheet = "Results"

var resultHeader = []interface{}{
	"Run ID",
	"Parameter",
	"Value",
	"Fitness",
	"Iterations",
	"Guard Average",
	"Guard Total",
	"Hostile Average",
	"Hostile Total",
}

// Export saves results to a spreadsheet, one row per result
func Export(filename string, results []Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultSheet); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	header := resultHeader
	if err := f.SetSheetRow(resultSheet, "A1", &header); err != nil {
		return fmt.Errorf("export: could not write header: %w", err)
	}

	for i, r := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		row := []interface{}{
			r.RunID,
			r.Parameter,
			r.Value,
			r.Fitness,
			r.Stats.Iterations,
			r.Stats.Guard.Average,
			r.Stats.Guard.Total,
			r.Stats.Hostile.Average,
			r.Stats.Hostile.Total,
		}
		if err := f.SetSheetRow(resultSheet, cell, &row); err != nil {
			return fmt.Errorf("export: could not write row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("export: could not save %q: %w", filename, err)
	}
	return nil
}
