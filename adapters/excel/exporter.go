package excel

import (
	"fprsim/domain/sim"
	"fprsim/internal/errors"

	"github.com/xuri/excelize/v2"
)

// SweepExporter writes sweep results to an .xlsx workbook, one row per
// participant count
type SweepExporter struct{}

// NewSweepExporter creates a new sweep exporter
func NewSweepExporter() *SweepExporter {
	return &SweepExporter{}
}

var sweepHeaders = []string{
	"participants", "trials", "alpha", "seed",
	"significant", "empirical_rate", "standard_error", "runtime_ms",
}

// Export writes the results to path
func (e *SweepExporter) Export(results []sim.SimulationResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sweep"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "failed to name sweep sheet")
	}

	for col, header := range sweepHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.Wrap(err, "failed to address header cell")
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return errors.Wrap(err, "failed to write header cell")
		}
	}

	for rowIdx, result := range results {
		values := []interface{}{
			result.Participants,
			result.Trials,
			result.Alpha,
			result.Seed,
			result.Significant,
			result.EmpiricalRate,
			result.StandardError(),
			result.RuntimeMs,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return errors.Wrap(err, "failed to address result cell")
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return errors.Wrapf(err, "failed to write result row %d", rowIdx+1)
			}
		}
	}

	return errors.Wrapf(f.SaveAs(path), "failed to save workbook %s", path)
}
