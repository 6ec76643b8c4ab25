package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gopier/internal/diagram"
	"github.com/alexiusacademia/gopier/internal/nscp"
	"github.com/alexiusacademia/gopier/internal/tower"
	"github.com/spf13/cobra"
)

var (
	summaryCombo  string
	summaryFilter filterFlags
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the peak stress of every pier",
	Long: `Show, for every pier, the base area and the peak stress of each load
combination over a level range.

Examples:
  gopier summary
  gopier summary --from 50 --to 100
  gopier summary --combo 4 --format json`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVarP(&summaryCombo, "combo", "c", "", "NSCP load combination ID applied before summarizing")
	summaryFilter.register(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	pier, err := summaryFilter.pierID()
	if err != nil {
		return err
	}
	ds := newDataset()

	params, err := summaryFilter.params(ds.MaxLevel)
	if err != nil {
		return err
	}
	if summaryCombo != "" {
		lc, err := nscp.Find(summaryCombo)
		if err != nil {
			return err
		}
		params.LoadFactors = lc.Factors()
	}

	summaries := tower.Summarize(tower.Recompute(ds, params))
	if pier != "" {
		filtered := summaries[:0]
		for _, s := range summaries {
			if s.Pier == pier {
				filtered = append(filtered, s)
			}
		}
		summaries = filtered
	}

	out := cmd.OutOrStdout()
	format := summaryFilter.outputFormat()
	if err := render(out, format, summaryReport(summaries)); err != nil {
		return err
	}

	if format == formatTable {
		var peak tower.PierSummary
		for _, s := range summaries {
			if s.MaxStress > peak.MaxStress {
				peak = s
			}
		}
		fmt.Fprint(out, diagram.DrawSummaryBox("PEAK STRESS", []string{
			fmt.Sprintf("Pier %s: %.2f kPa", peak.Pier, peak.MaxStress),
			fmt.Sprintf("Levels %d to %d", params.LevelRange.Min(), params.LevelRange.Max()),
		}))
		fmt.Fprintln(out)
	}
	return nil
}
