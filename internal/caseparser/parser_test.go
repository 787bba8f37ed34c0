package caseparser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const twoCases = `Test Case 1:
Span: 6000 mm
Moment: 120 kN·m
Shear Force: 80 kN
Yield Strength: 250 MPa
Section Modulus (Z): 1200000 mm³
Moment of Inertia (I): 85000000 mm⁴
Cross-sectional Area (A): 5000 mm²

Test Case 2:
Span: 4000 mm
Moment: 90 kN·m
Shear Force: 500 kN
Yield Strength: 250 MPa
Section Modulus (Z): 900000
Moment of Inertia (I): 60000000
Cross-sectional Area (A): 4000
`

func TestParseMultipleCases(t *testing.T) {
	cases, err := ParseString(twoCases)
	require.NoError(t, err)
	require.Len(t, cases, 2)

	want := FieldMap{
		FieldSpan:             6000,
		FieldMoment:           120,
		FieldShearForce:       80,
		FieldYieldStrength:    250,
		FieldSectionModulus:   1200000,
		FieldMomentOfInertia:  85000000,
		FieldCrossSectionArea: 5000,
	}
	if diff := cmp.Diff(want, cases[0]); diff != "" {
		t.Errorf("case 1 mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 4000.0, cases[1][FieldSpan])
	assert.Equal(t, 500.0, cases[1][FieldShearForce])
	for i, fm := range cases {
		assert.Empty(t, fm.Missing(), "case %d", i+1)
	}
}

func TestParseValueStripsEverythingButDigitsAndDots(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{" 6000 mm", 6000},
		{" 120 kN·m", 120},
		{" 250 MPa", 250},
		{"8.5e7", 8.57},
		{" 8.5e7 mm4", 8.574},
		{" 5000 mm2", 50002},
		{" -12.5", 12.5},
		{".5", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseValue(tt.raw)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseValueRejectsNonNumeric(t *testing.T) {
	for _, raw := range []string{"", " MPa", " .", " 1.2.3 mm"} {
		_, err := ParseValue(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestParseImplicitSingleCase(t *testing.T) {
	cases, err := ParseString("Span: 6000\nMoment: 120\n")
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, FieldMap{FieldSpan: 6000, FieldMoment: 120}, cases[0])
}

func TestParseSkipsEmptyBlocks(t *testing.T) {
	cases, err := ParseString("Test Case 1:\n\nTest Case 2:\nSpan: 1\n\n")
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, 1.0, cases[0][FieldSpan])
}

func TestParseEmptyInput(t *testing.T) {
	cases, err := ParseString("\n  \n")
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestParseTrimsKeysAndSplitsOnFirstColon(t *testing.T) {
	cases, err := ParseString("   Shear Force   :  80 kN\nNote: ratio 1:2\n")
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, 80.0, cases[0][FieldShearForce])
	assert.Equal(t, 12.0, cases[0]["Note"])
}

func TestParseMalformedLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"no colon", "Test Case 1:\nSpan 6000 mm\n", 2},
		{"no number", "Span: 6000\nMoment: unknown\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cases, err := ParseString(tt.input)
			require.Error(t, err)
			assert.Nil(t, cases)
			assert.True(t, errors.Is(err, ErrMalformedLine))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}

func TestFieldMapGet(t *testing.T) {
	fm := FieldMap{FieldSpan: 6000}

	v, err := fm.Get(FieldSpan)
	require.NoError(t, err)
	assert.Equal(t, 6000.0, v)

	_, err = fm.Get(FieldShearForce)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), `"Shear Force"`)
}

func TestFieldMapMissing(t *testing.T) {
	fm := FieldMap{FieldSpan: 1, FieldMoment: 1, FieldYieldStrength: 1}
	assert.Equal(t, []string{
		FieldShearForce,
		FieldSectionModulus,
		FieldMomentOfInertia,
		FieldCrossSectionArea,
	}, fm.Missing())
}

func TestParseLongLine(t *testing.T) {
	padding := strings.Repeat(" ", 200*1024)
	cases, err := ParseString("Test Case 1:\nSpan:" + padding + "6000 mm\n")
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, 6000.0, cases[0][FieldSpan])
}

func TestFieldMapRequire(t *testing.T) {
	complete := FieldMap{}
	for _, key := range RequiredFields {
		complete[key] = 1
	}
	assert.NoError(t, complete.Require())

	err := FieldMap{FieldSpan: 1}.Require()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), `"Moment", "Shear Force"`)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beam_design_input.txt")
	require.NoError(t, os.WriteFile(path, []byte(twoCases), 0644))

	cases, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, cases, 2)
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{FieldSpan, FieldMoment, FieldShearForce, FieldYieldStrength, FieldSectionModulus, FieldMomentOfInertia, FieldCrossSectionArea},
		{"6000 mm", 120, 80, "250 MPa", 1200000, 85000000, 5000},
		{},
		{4000, 90, 500, 250, 900000, 60000000, 4000},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	cases, err := Read(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, 6000.0, cases[0][FieldSpan])
	assert.Equal(t, 250.0, cases[0][FieldYieldStrength])
	assert.Equal(t, 500.0, cases[1][FieldShearForce])
	assert.Empty(t, cases[1].Missing())
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseString("Span 6000")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), `line 1 "Span 6000"`))
}
