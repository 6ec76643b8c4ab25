package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gopier/internal/nscp"
	"github.com/spf13/cobra"
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "List the NSCP load combination presets",
	Long: `List the NSCP 2015 load combinations usable with --combo, and the
factors they apply to the gravity, wind and seismic load cases.

Gravity rows are treated as dead load (D). Live, roof and rain loads are
not generated, so their terms do not contribute.`,
	Run: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)
}

func runCombos(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tGravity\tWind\tSeismic\n")
	fmt.Fprintf(w, "  ─\t───────────\t───────\t────\t───────\n")
	for _, lc := range nscp.LoadCombinations {
		fmt.Fprintf(w, "  %s\t%s\t%.1f\t%.1f\t%.1f\n", lc.ID, lc.Description, lc.Gravity, lc.Wind, lc.Seismic)
	}
	w.Flush()
	fmt.Fprintln(out)
}
