package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gosbc/internal/caseparser"
	"github.com/alexiusacademia/gosbc/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionFile    string
	sectionDepth   float64
	sectionBf      float64
	sectionTf      float64
	sectionTw      float64
	sectionEmit    bool
	sectionPlastic bool
)

var sectionPropertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Calculate A, I and Z of a steel section",
	Long: `Calculate the gross area, the second moment of area about the
horizontal centroidal axis, and the elastic and plastic section moduli.

Examples:
  # I-section from plate sizes
  gosbc section properties --depth 300 --bf 150 --tf 10 --tw 8

  # Polygonal section from a file, printed as test case lines
  gosbc section properties -f built-up.json --emit

  # Use the plastic modulus on the emitted Z line
  gosbc section properties -f built-up.yaml --emit --plastic`,
	RunE: runSectionProperties,
}

func init() {
	sectionCmd.AddCommand(sectionPropertiesCmd)

	sectionPropertiesCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to section JSON/YAML file")

	// I-section flags
	sectionPropertiesCmd.Flags().Float64Var(&sectionDepth, "depth", 0, "Overall depth d (mm)")
	sectionPropertiesCmd.Flags().Float64Var(&sectionBf, "bf", 0, "Flange width bf (mm)")
	sectionPropertiesCmd.Flags().Float64Var(&sectionTf, "tf", 0, "Flange thickness tf (mm)")
	sectionPropertiesCmd.Flags().Float64Var(&sectionTw, "tw", 0, "Web thickness tw (mm)")

	// Output options
	sectionPropertiesCmd.Flags().BoolVar(&sectionEmit, "emit", false, "Print test case lines for the input file")
	sectionPropertiesCmd.Flags().BoolVar(&sectionPlastic, "plastic", false, "Emit the plastic modulus Zp as Z instead of Ze")

	sectionPropertiesCmd.MarkFlagsMutuallyExclusive("file", "depth")
}

func runSectionProperties(cmd *cobra.Command, args []string) error {
	var sec *section.Section
	var err error

	switch {
	case sectionFile != "":
		sec, err = section.LoadFromFile(sectionFile)
	case sectionDepth > 0:
		sec, err = section.NewISection(fmt.Sprintf("I-section %gx%g", sectionDepth, sectionBf),
			sectionDepth, sectionBf, sectionTf, sectionTw)
	default:
		err = errors.New("provide --file or the I-section sizes (--depth, --bf, --tf, --tw)")
	}
	if err != nil {
		return err
	}

	props := sec.CalculateProperties()
	out := cmd.OutOrStdout()

	if sectionEmit {
		emitFields(out, sec, props)
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "               STEEL SECTION PROPERTIES")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	if sec.Name != "" {
		fmt.Fprintf(out, "  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", sec.Description)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "GEOMETRY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width:\t%.1f mm\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.1f mm\n", props.Height)
	fmt.Fprintf(w, "  Area (A):\t%.2f mm²\n", props.Area)
	fmt.Fprintf(w, "  Centroid (x, y):\t(%.2f, %.2f) mm\n", props.CentroidX, props.CentroidY)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "BENDING ABOUT THE HORIZONTAL AXIS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.0f mm⁴\n", props.Ixx)
	fmt.Fprintf(w, "  Elastic modulus (Ze):\t%.0f mm³\n", props.Ze)
	fmt.Fprintf(w, "  Plastic modulus (Zp):\t%.0f mm³\n", props.Zp)
	fmt.Fprintf(w, "  Plastic neutral axis:\ty = %.2f mm\n", props.PlasticAxisY)
	fmt.Fprintf(w, "  Shape factor (Zp/Ze):\t%.3f\n", props.ShapeFactor)
	w.Flush()
	fmt.Fprintln(out)

	if sec.Fy > 0 {
		fmt.Fprintf(out, "  fy = %.0f MPa\n\n", sec.Fy)
	}
	return nil
}

// emitFields prints bare numbers: unit text like "mm4" would leak its digit
// into the parsed value
func emitFields(out io.Writer, sec *section.Section, props *section.SectionProperties) {
	if sec.Fy > 0 {
		fmt.Fprintf(out, "%s: %.2f\n", caseparser.FieldYieldStrength, sec.Fy)
	}
	z := props.Ze
	if sectionPlastic {
		z = props.Zp
	}
	fmt.Fprintf(out, "%s: %.2f\n", caseparser.FieldSectionModulus, z)
	fmt.Fprintf(out, "%s: %.2f\n", caseparser.FieldMomentOfInertia, props.Ixx)
	fmt.Fprintf(out, "%s: %.2f\n", caseparser.FieldCrossSectionArea, props.Area)
}
