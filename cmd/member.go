package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosbc/internal/beam"
	"github.com/alexiusacademia/gosbc/internal/diagram"
	"github.com/alexiusacademia/gosbc/internal/is800"
	"github.com/alexiusacademia/gosbc/internal/report"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Member inputs
	memberSpan    float64
	memberMoment  float64
	memberShear   float64
	memberFy      float64
	memberZ       float64
	memberI       float64
	memberArea    float64
	memberDiagram bool
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Check a single steel beam given on the command line",
	Long: `Run the moment, shear and deflection checks for one steel beam
without an input file.

The checks follow the simplified IS 800:2007 provisions used for batch runs:
  - Moment capacity:  Md = Z·fy·(1 + P/γm0), limited to 1.2·Z·fy/γm0
  - Shear capacity:   Vd = 0.6·A·fy/γm0
  - Deflection:       δ = 5·M·L²/(48·E·I) against span/250

Examples:
  # 6 m beam with Z = 1.2e6 mm³ and I = 8.5e7 mm⁴
  gosbc member --span 6000 --moment 120 --shear 80 --fy 250 --z 1200000 --inertia 85000000 --area 5000

  # With the deflected shape
  gosbc member -L 6000 -M 120 -V 80 --z 1200000 -I 85000000 -A 5000 --diagram`,
	RunE: runMember,
}

func init() {
	rootCmd.AddCommand(memberCmd)

	// Geometry and loading flags
	memberCmd.Flags().Float64VarP(&memberSpan, "span", "L", 0, "Span (mm) [required]")
	memberCmd.Flags().Float64VarP(&memberMoment, "moment", "M", 0, "Applied moment (kN·m) [required]")
	memberCmd.Flags().Float64VarP(&memberShear, "shear", "V", 0, "Applied shear force (kN) [required]")

	// Material flag
	memberCmd.Flags().Float64Var(&memberFy, "fy", 250, "Steel yield strength fy (MPa)")

	// Section flags
	memberCmd.Flags().Float64Var(&memberZ, "z", 0, "Section modulus Z (mm³) [required]")
	memberCmd.Flags().Float64VarP(&memberI, "inertia", "I", 0, "Moment of inertia I (mm⁴) [required]")
	memberCmd.Flags().Float64VarP(&memberArea, "area", "A", 0, "Cross-sectional area A (mm²) [required]")

	// Options
	memberCmd.Flags().BoolVar(&memberDiagram, "diagram", false, "Show ASCII deflected shape")

	// Mark required flags
	memberCmd.MarkFlagRequired("span")
	memberCmd.MarkFlagRequired("moment")
	memberCmd.MarkFlagRequired("shear")
	memberCmd.MarkFlagRequired("z")
	memberCmd.MarkFlagRequired("inertia")
	memberCmd.MarkFlagRequired("area")
}

func runMember(cmd *cobra.Command, args []string) error {
	m := &beam.Member{
		Span:       memberSpan,
		Moment:     memberMoment,
		ShearForce: memberShear,
		Fy:         memberFy,
		Z:          memberZ,
		I:          memberI,
		Area:       memberArea,
	}

	result, err := m.Check(cfg.Factors)
	if err != nil {
		return err
	}
	logger.Debug("Member checked", zap.Bool("passed", result.Passed()))

	printMember(cmd.OutOrStdout(), m, result, cfg.Factors)
	return nil
}

func printMember(out io.Writer, m *beam.Member, result *beam.CaseResult, f is800.Factors) {
	pass := color.New(color.FgGreen, color.Bold).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()
	status := func(c beam.CheckResult) string {
		if c.Pass {
			return pass("✓ " + c.Status())
		}
		return fail("✗ " + c.Status())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "        STEEL BEAM DESIGN CHECK - IS 800:2007")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	// Input summary
	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.0f mm\n", m.Span)
	fmt.Fprintf(w, "  Applied Moment (M):\t%.2f kN·m\n", m.Moment)
	fmt.Fprintf(w, "  Applied Shear (V):\t%.2f kN\n", m.ShearForce)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", m.Fy)
	fmt.Fprintf(w, "  Section Modulus (Z):\t%.0f mm³\n", m.Z)
	fmt.Fprintf(w, "  Moment of Inertia (I):\t%.0f mm⁴\n", m.I)
	fmt.Fprintf(w, "  Area (A):\t%.0f mm²\n", m.Area)
	w.Flush()
	fmt.Fprintln(out)

	// Design constants
	fmt.Fprintln(out, "DESIGN CONSTANTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  E:\t%.0f MPa\n", f.E)
	fmt.Fprintf(w, "  γm0:\t%.2f\n", f.GammaM0)
	fmt.Fprintf(w, "  P (section class):\t%.2f\n", f.SectionFactor)
	fmt.Fprintf(w, "  Deflection limit:\tspan/%.0f\n", f.DeflectionRatio)
	w.Flush()
	fmt.Fprintln(out)

	// Checks
	u := m.Utilization(f)
	ratios := []float64{u.Moment, u.Shear, u.Deflection}
	for i, check := range result.Checks {
		fmt.Fprintf(out, "%s:\n", strings.ToUpper(check.Name))
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, field := range check.Fields {
			fmt.Fprintf(w, "  %s:\t%s\n", field.Label, report.FormatFloat(field.Value))
		}
		fmt.Fprintf(w, "  Demand/Capacity:\t%s %.3f\n", diagram.UtilizationBar(ratios[i], 20), ratios[i])
		w.Flush()
		fmt.Fprintf(out, "  Status: %s\n", status(check))
		fmt.Fprintln(out)
	}

	if memberDiagram {
		xs, ys := beam.DeflectedShape(m.Span, m.Moment, m.I, f, 61)
		shape := diagram.ASCIIDeflectedShape(diagram.DeflectionData{
			Title: "Deflected shape",
			X:     xs,
			Y:     ys,
			Limit: beam.PermissibleDeflection(m.Span, f),
		}, 60, 8)
		if shape != "" {
			fmt.Fprintln(out, "DEFLECTED SHAPE:")
			fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
			fmt.Fprintln(out, shape)
			fmt.Fprintln(out)
		}
	}

	overall := "ALL CHECKS PASS"
	if !result.Passed() {
		overall = "ONE OR MORE CHECKS FAIL"
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("RESULT", []string{overall}))
	fmt.Fprintln(out)
}
