package cmd

import (
	"github.com/alexiusacademia/gopier/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	governCombos []string
	governFilter filterFlags
)

var governCmd = &cobra.Command{
	Use:   "govern",
	Short: "Find the governing NSCP load combination of every pier",
	Long: `Recompute stress under each NSCP 2015 load combination and report, for
every pier, the combination, level and load case with the largest stress.

Examples:
  gopier govern
  gopier govern --combo 1,4,5 --to 50`,
	RunE: runGovern,
}

func init() {
	rootCmd.AddCommand(governCmd)

	governCmd.Flags().StringSliceVarP(&governCombos, "combo", "c", nil, "NSCP load combination IDs to check (default: all)")
	governFilter.register(governCmd)
}

func runGovern(cmd *cobra.Command, args []string) error {
	pier, err := governFilter.pierID()
	if err != nil {
		return err
	}
	combos, err := nscp.FindAll(governCombos)
	if err != nil {
		return err
	}
	ds := newDataset()

	params, err := governFilter.params(ds.MaxLevel)
	if err != nil {
		return err
	}
	governing := nscp.CalculateGoverningStress(ds, params.LevelRange, combos)
	if pier != "" {
		filtered := governing[:0]
		for _, g := range governing {
			if g.Pier == pier {
				filtered = append(filtered, g)
			}
		}
		governing = filtered
	}

	return render(cmd.OutOrStdout(), governFilter.outputFormat(), governingReport(governing))
}
