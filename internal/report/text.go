// Package report renders check results as a text report, a workbook or a PDF
// calculation sheet.
package report

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosbc/internal/beam"
	"github.com/alexiusacademia/gosbc/internal/filelock"
)

// Write renders results in case order:
//
//	Results for Test Case N:
//	<Check>:
//	  <Label>: <Value>
//	  Status: Pass|Fail
//	<blank>
//
// with one more blank line closing every case.
func Write(w io.Writer, results []beam.CaseResult) error {
	for i, result := range results {
		if _, err := fmt.Fprintf(w, "Results for Test Case %d:\n", i+1); err != nil {
			return err
		}
		for _, check := range result.Checks {
			if err := writeCheck(w, check); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeCheck(w io.Writer, check beam.CheckResult) error {
	var sb strings.Builder
	sb.WriteString(check.Name + ":\n")
	for _, field := range check.Fields {
		fmt.Fprintf(&sb, "  %s: %s\n", field.Label, FormatFloat(field.Value))
	}
	fmt.Fprintf(&sb, "  Status: %s\n", check.Status())
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteFile renders the report in memory and replaces path with it atomically
func WriteFile(path string, results []beam.CaseResult) error {
	var buf bytes.Buffer
	if err := Write(&buf, results); err != nil {
		return err
	}
	if err := filelock.WriteLocked(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// FormatFloat prints v with the fewest digits that read back to v, always
// showing a decimal point for integral values (120.0) and switching to
// exponent form below 1e-4 or from 1e16 up (2.5e-05).
func FormatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
