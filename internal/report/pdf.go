package report

import (
	"fmt"
	"time"

	"github.com/alexiusacademia/gosbc/internal/beam"
	"github.com/phpdave11/gofpdf"
)

// PDFOptions controls the calculation sheet header
type PDFOptions struct {
	Title   string
	Project string
	Date    time.Time
}

// WritePDF saves an A4 calculation sheet with one table per test case
func WritePDF(path string, results []beam.CaseResult, opts PDFOptions) error {
	if opts.Title == "" {
		opts.Title = "Steel Beam Design Check (IS 800:2007)"
	}
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFillColor(230, 230, 230)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(opts.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if opts.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", opts.Project)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", opts.Date.Format("2006-01-02")))
	pdf.Ln(10)

	for i, result := range results {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Results for Test Case %d", i+1))
		pdf.Ln(9)

		for _, check := range result.Checks {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(150, 6, tr(check.Name), "1", 0, "L", true, 0, "")
			pdf.CellFormat(30, 6, check.Status(), "1", 1, "C", true, 0, "")

			pdf.SetFont("Helvetica", "", 10)
			for _, field := range check.Fields {
				pdf.CellFormat(100, 6, tr(field.Label), "1", 0, "L", false, 0, "")
				pdf.CellFormat(80, 6, FormatFloat(field.Value), "1", 1, "R", false, 0, "")
			}
			pdf.Ln(3)
		}
		pdf.Ln(4)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to save PDF: %w", err)
	}
	return nil
}
