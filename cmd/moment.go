package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gosbc/internal/is800"
	"github.com/spf13/cobra"
)

var (
	// Unfactored moments (kN-m)
	momentDead       float64
	momentLive       float64
	momentWind       float64
	momentEarthquake float64

	// Options
	showAll       bool
	useSimplified bool
)

var momentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Calculate factored moment using IS 800 load combinations",
	Long: `Calculate the design moment based on IS 800:2007 Table 4 partial
safety factors for the limit state of strength.

Provide unfactored moments from different load types and this command will
compute the factored moments for all applicable load combinations. The
governing value is what goes on the "Moment:" line of a test case.

Load Types:
  DL - Dead load
  LL - Imposed (live) load
  WL - Wind load
  EL - Earthquake load

Examples:
  # Simple gravity loads (dead + live)
  gosbc moment --dead 50 --live 30

  # With wind load
  gosbc moment --dead 50 --live 30 --wind 20

  # Show all combinations
  gosbc moment --dead 50 --live 30 --all`,
	RunE: runMoment,
}

func init() {
	rootCmd.AddCommand(momentCmd)

	// Load moment flags
	momentCmd.Flags().Float64VarP(&momentDead, "dead", "d", 0, "Moment due to dead load (kN-m)")
	momentCmd.Flags().Float64VarP(&momentLive, "live", "l", 0, "Moment due to imposed load (kN-m)")
	momentCmd.Flags().Float64VarP(&momentWind, "wind", "w", 0, "Moment due to wind load (kN-m)")
	momentCmd.Flags().Float64VarP(&momentEarthquake, "earthquake", "e", 0, "Moment due to earthquake load (kN-m)")

	// Options
	momentCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	momentCmd.Flags().BoolVarP(&useSimplified, "simplified", "s", false, "Use gravity-only combination (1.5DL + 1.5LL)")
}

func runMoment(cmd *cobra.Command, args []string) error {
	moments := is800.LoadMoments{
		Dead:       momentDead,
		Live:       momentLive,
		Wind:       momentWind,
		Earthquake: momentEarthquake,
	}

	if moments.IsZero() {
		return errors.New("please provide at least one unfactored moment; use 'gosbc moment --help' for usage")
	}

	// Select which combinations to use
	combinations := is800.LoadCombinations
	if useSimplified {
		combinations = is800.SimplifiedCombinations
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          IS 800:2007 FACTORED MOMENT CALCULATION")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "UNFACTORED MOMENTS (kN-m):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if moments.Dead != 0 {
		fmt.Fprintf(w, "  Dead Load (DL):\t%.2f\n", moments.Dead)
	}
	if moments.Live != 0 {
		fmt.Fprintf(w, "  Imposed Load (LL):\t%.2f\n", moments.Live)
	}
	if moments.Wind != 0 {
		fmt.Fprintf(w, "  Wind Load (WL):\t%.2f\n", moments.Wind)
	}
	if moments.Earthquake != 0 {
		fmt.Fprintf(w, "  Earthquake Load (EL):\t%.2f\n", moments.Earthquake)
	}
	w.Flush()
	fmt.Fprintln(out)

	maxMu, governingCombo := is800.CalculateGoverningMoment(moments, combinations)

	if showAll {
		fmt.Fprintln(out, "LOAD COMBINATIONS (IS 800:2007 Table 4):")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tMu (kN-m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")

		for _, combo := range combinations {
			mu := combo.CalculateFactoredMoment(moments)
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, mu, marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  ╔═══════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  FACTORED MOMENT (Mu) = %.2f kN-m  \n", maxMu)
	fmt.Fprintf(out, "  ╚═══════════════════════════════════╝\n")
	fmt.Fprintln(out)
	return nil
}
