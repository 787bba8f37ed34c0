package report

import (
	"fmt"

	"github.com/alexiusacademia/gosbc/internal/beam"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the results table
const SheetName = "Results"

var xlsxHeader = []interface{}{"Test Case", "Check", "Demand Label", "Demand", "Capacity Label", "Capacity", "Status"}

// WriteXLSX saves one row per case and check to a workbook at path
func WriteXLSX(path string, results []beam.CaseResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := setRow(f, 1, xlsxHeader); err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	row := 2
	for i, result := range results {
		for _, check := range result.Checks {
			values := []interface{}{i + 1, check.Name}
			for _, field := range check.Fields {
				values = append(values, field.Label, field.Value)
			}
			values = append(values, check.Status())

			if err := setRow(f, row, values); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.SetColWidth(SheetName, "B", "E", 28); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
