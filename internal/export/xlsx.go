package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/binpack/internal/model"
)

// Sheet names used by ExportXLSX.
const (
	SheetSummary    = "Summary"
	SheetPlacements = "Placements"
	SheetUnplaced   = "Unplaced"
)

var placementHeader = []any{"Bin", "Label", "X", "Y", "Width", "Height", "Area"}

// ExportXLSX writes a workbook with a summary sheet, one row per placed item
// and, when anything was left over, the unplaced specs.
func ExportXLSX(path string, result model.PackResult, settings model.JobSettings) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := writeSummary(f, result, settings, bold); err != nil {
		return err
	}
	if err := writePlacements(f, result, bold); err != nil {
		return err
	}
	if len(result.Unplaced) > 0 {
		if err := writeUnplaced(f, result.Unplaced, bold); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

func writeSummary(f *excelize.File, result model.PackResult, settings model.JobSettings, bold int) error {
	rows := [][]any{
		{"Algorithm", string(result.Algorithm)},
		{"Heuristic", result.Heuristic},
		{"Bin width", settings.Width},
		{"Bin height", settings.Height},
		{"Max bins", settings.MaxBins},
		{"Presort", sortLabel(settings)},
		{"Bins used", len(result.Bins)},
		{"Items placed", result.PlacedCount()},
		{"Unplaced specs", len(result.Unplaced)},
		{"Efficiency %", round1(result.TotalEfficiency())},
		{},
		{"Bin", "Items", "Used area", "Total area", "Efficiency %", "Extent width", "Extent height"},
	}
	for _, b := range result.Bins {
		rows = append(rows, []any{
			b.Index + 1, len(b.Placements), b.UsedArea(), b.TotalArea(),
			round1(b.Efficiency()), b.Stats.Width, b.Stats.Height,
		})
	}

	if err := setRows(f, SheetSummary, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", "A10", bold); err != nil {
		return fmt.Errorf("style summary: %w", err)
	}
	if err := f.SetCellStyle(SheetSummary, "A12", "G12", bold); err != nil {
		return fmt.Errorf("style summary: %w", err)
	}
	return f.SetColWidth(SheetSummary, "A", "A", 16)
}

func writePlacements(f *excelize.File, result model.PackResult, bold int) error {
	if _, err := f.NewSheet(SheetPlacements); err != nil {
		return fmt.Errorf("create %s sheet: %w", SheetPlacements, err)
	}

	rows := [][]any{placementHeader}
	for _, b := range result.Bins {
		for _, p := range b.Placements {
			rows = append(rows, []any{
				b.Index + 1, p.Label, p.Corner.X, p.Corner.Y, p.Item.Width, p.Item.Height, p.Item.Area(),
			})
		}
	}

	if err := setRows(f, SheetPlacements, rows); err != nil {
		return err
	}
	return f.SetCellStyle(SheetPlacements, "A1", "G1", bold)
}

func writeUnplaced(f *excelize.File, specs []model.ItemSpec, bold int) error {
	if _, err := f.NewSheet(SheetUnplaced); err != nil {
		return fmt.Errorf("create %s sheet: %w", SheetUnplaced, err)
	}

	rows := [][]any{{"Label", "Width", "Height", "Quantity"}}
	for _, s := range specs {
		rows = append(rows, []any{s.Label, s.Width, s.Height, s.Quantity})
	}

	if err := setRows(f, SheetUnplaced, rows); err != nil {
		return err
	}
	return f.SetCellStyle(SheetUnplaced, "A1", "D1", bold)
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
