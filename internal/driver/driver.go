// Package driver runs the batch pipeline: read cases, check each member,
// write the report. Any error stops the whole batch.
package driver

import (
	"fmt"
	"path/filepath"

	"github.com/alexiusacademia/gosbc/internal/beam"
	"github.com/alexiusacademia/gosbc/internal/caseparser"
	"github.com/alexiusacademia/gosbc/internal/diagram"
	"github.com/alexiusacademia/gosbc/internal/is800"
	"github.com/alexiusacademia/gosbc/internal/report"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// shapeSamples is the number of points per plotted deflected shape
const shapeSamples = 101

// Options selects the input, the outputs and the design constants of a run
type Options struct {
	Input   string
	Output  string
	XLSX    string // optional workbook
	PDF     string // optional calculation sheet
	PlotDir string // optional directory for deflected-shape images
	Project string
	Factors is800.Factors
}

// Outcome is the single result of a batch run
type Outcome struct {
	OK      bool
	Message string
	Cases   int
	Err     error
}

// Run executes the pipeline and folds every failure into the Outcome
func Run(opts Options, log *zap.Logger) Outcome {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("run_id", uuid.NewString()))

	results, err := run(opts, log)
	if err != nil {
		log.Debug("Batch failed", zap.Error(err))
		return Outcome{
			Message: fmt.Sprintf("An error occurred: %v", err),
			Err:     err,
		}
	}

	log.Info("Batch complete", zap.Int("cases", len(results)), zap.String("output", opts.Output))
	return Outcome{
		OK:      true,
		Message: fmt.Sprintf("Output file '%s' has been created successfully.", opts.Output),
		Cases:   len(results),
	}
}

func run(opts Options, log *zap.Logger) ([]beam.CaseResult, error) {
	if err := opts.Factors.Validate(); err != nil {
		return nil, err
	}

	log.Debug("Reading cases", zap.String("input", opts.Input))
	cases, err := caseparser.Read(opts.Input)
	if err != nil {
		return nil, err
	}
	log.Debug("Cases read", zap.Int("count", len(cases)))

	results := make([]beam.CaseResult, 0, len(cases))
	for i, fm := range cases {
		result, err := beam.DesignFlexuralMember(fm, opts.Factors)
		if err != nil {
			return nil, err
		}
		log.Debug("Case checked",
			zap.Int("case", i+1),
			zap.Bool("passed", result.Passed()))
		results = append(results, *result)
	}

	if err := report.WriteFile(opts.Output, results); err != nil {
		return nil, err
	}

	if opts.XLSX != "" {
		if err := report.WriteXLSX(opts.XLSX, results); err != nil {
			return nil, err
		}
		log.Info("Workbook written", zap.String("path", opts.XLSX))
	}

	if opts.PDF != "" {
		if err := report.WritePDF(opts.PDF, results, report.PDFOptions{Project: opts.Project}); err != nil {
			return nil, err
		}
		log.Info("Calculation sheet written", zap.String("path", opts.PDF))
	}

	if opts.PlotDir != "" {
		if err := plotCases(opts, cases, log); err != nil {
			return nil, err
		}
	}

	return results, nil
}

func plotCases(opts Options, cases []caseparser.FieldMap, log *zap.Logger) error {
	for i, fm := range cases {
		m, err := beam.MemberFromFields(fm)
		if err != nil {
			return err
		}

		xs, ys := beam.DeflectedShape(m.Span, m.Moment, m.I, opts.Factors, shapeSamples)
		if xs == nil {
			log.Warn("Skipping deflected shape for a zero span", zap.Int("case", i+1))
			continue
		}
		data := diagram.DeflectionData{
			Title: fmt.Sprintf("Test Case %d", i+1),
			X:     xs,
			Y:     ys,
			Limit: beam.PermissibleDeflection(m.Span, opts.Factors),
		}

		path, err := diagram.ExportDeflectedShape(data, filepath.Join(opts.PlotDir, fmt.Sprintf("case-%d.png", i+1)))
		if err != nil {
			return fmt.Errorf("test case %d: %w", i+1, err)
		}
		log.Debug("Deflected shape written", zap.Int("case", i+1), zap.String("path", path))
	}
	return nil
}
