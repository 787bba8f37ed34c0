package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexiusacademia/gosbc/internal/config"
	"github.com/alexiusacademia/gosbc/internal/driver"
	"github.com/alexiusacademia/gosbc/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global options
	configPath string
	verbose    bool

	// Batch options, empty means "use the config value"
	inputPath  string
	outputPath string
	xlsxPath   string
	pdfPath    string
	plotDir    string

	cfg    *config.Config
	logger *zap.Logger
)

// errBatchFailed signals that the batch message was already printed
var errBatchFailed = errors.New("batch failed")

var rootCmd = &cobra.Command{
	Use:   "gosbc",
	Short: "Steel Beam Design Check Tool",
	Long: `gosbc - Go Steel Beam Checker

Checks steel flexural members for bending, shear and deflection using
simplified IS 800:2007 limit state provisions.

Run without a subcommand to process every test case in the input file
(default beam_design_input.txt) and write a report to the output file
(default beam_design_output.txt).

Input format:
  Test Case 1:
  Span: 6000 mm
  Moment: 120 kN·m
  Shear Force: 80 kN
  Yield Strength: 250 MPa
  Section Modulus (Z): 1200000
  Moment of Inertia (I): 85000000
  Cross-sectional Area (A): 5000

Only digits and '.' are kept from each value: write 85000000, not 8.5e7,
and keep digits out of unit text (mm2 would append a 2).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runBatch,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errBatchFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFile, "Configuration file (YAML, optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Test case file, .txt or .xlsx (default beam_design_input.txt)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report file (default beam_design_output.txt)")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write results to this Excel workbook")
	rootCmd.Flags().StringVar(&pdfPath, "pdf", "", "Also write a PDF calculation sheet")
	rootCmd.Flags().StringVar(&plotDir, "plot-dir", "", "Also export a deflected-shape image per case to this directory")
}

func runBatch(cmd *cobra.Command, args []string) error {
	opts := driver.Options{
		Input:   override(cfg.Input, inputPath),
		Output:  override(cfg.Output, outputPath),
		XLSX:    override(cfg.XLSX, xlsxPath),
		PDF:     override(cfg.PDF, pdfPath),
		PlotDir: override(cfg.PlotDir, plotDir),
		Project: cfg.Project,
		Factors: cfg.Factors,
	}

	outcome := driver.Run(opts, logger)
	fmt.Fprintln(cmd.OutOrStdout(), outcome.Message)
	if !outcome.OK {
		return errBatchFailed
	}
	return nil
}

func override(base, flag string) string {
	if flag != "" {
		return flag
	}
	return base
}
