package caseparser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX loads test cases from the first sheet of a workbook.
// Row 1 holds field names; every following row with at least one value is
// one case. Cells go through the same digit filter as text input.
func ReadXLSX(path string) ([]FieldMap, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	var cases []FieldMap
	for i := 1; i < len(rows); i++ {
		fm, err := parseRow(header, rows[i])
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: strings.Join(rows[i], ","), Err: err}
		}
		if len(fm) > 0 {
			cases = append(cases, fm)
		}
	}

	return cases, nil
}

func parseRow(header, row []string) (FieldMap, error) {
	fm := FieldMap{}
	for col, cell := range row {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		if col >= len(header) || header[col] == "" {
			return nil, errors.New("value in a column without a field name")
		}
		v, err := ParseValue(cell)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", header[col], err)
		}
		fm[header[col]] = v
	}
	return fm, nil
}
