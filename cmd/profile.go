package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gopier/internal/diagram"
	"github.com/alexiusacademia/gopier/internal/tower"
	"github.com/ansel1/merry"
	"github.com/spf13/cobra"
)

var (
	profileShowDiagram bool
	profileExportFile  string
	profileFilter      filterFlags
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the stress profile of a pier over the building height",
	Long: `Show the stress of one pier against level, one series per load
combination.

Examples:
  gopier profile --pier P1 --diagram
  gopier profile --pier P3 -o p3.svg
  gopier profile --pier P2 --format json`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileFilter.register(profileCmd)
	profileCmd.MarkFlagRequired("pier")

	// Diagram options
	profileCmd.Flags().BoolVar(&profileShowDiagram, "diagram", false, "Show ASCII stress profile charts")
	profileCmd.Flags().StringVarP(&profileExportFile, "output", "o", "", "Export profile chart to file (png, svg, pdf)")
}

func profileReport(pier tower.PierID, series []tower.Series) report {
	r := report{
		title:  fmt.Sprintf("STRESS PROFILE - PIER %s", pier),
		header: []string{"Level"},
		value:  series,
	}
	for _, s := range series {
		r.header = append(r.header, string(s.Combo)+" (kPa)")
	}
	if len(series) == 0 {
		return r
	}
	for i, pt := range series[0].Points {
		row := []string{lvl(pt.Level)}
		for _, s := range series {
			if i < len(s.Points) {
				row = append(row, f2(s.Points[i].Stress))
			} else {
				row = append(row, "")
			}
		}
		r.rows = append(r.rows, row)
	}
	return r
}

func runProfile(cmd *cobra.Command, args []string) error {
	pier, err := profileFilter.pierID()
	if err != nil {
		return err
	}
	ds := newDataset()

	params, err := profileFilter.params(ds.MaxLevel)
	if err != nil {
		return err
	}
	series := tower.Profile(tower.Recompute(ds, params), pier)

	out := cmd.OutOrStdout()
	if err := render(out, profileFilter.outputFormat(), profileReport(pier, series)); err != nil {
		return err
	}

	if profileShowDiagram {
		fmt.Fprintln(out, diagram.DrawASCIIProfile(pier, series))
	}

	if profileExportFile != "" {
		if err := diagram.ExportProfile(pier, series, profileExportFile); err != nil {
			return merry.Prepend(err, "exporting profile")
		}
		log.Info("profile exported", "file", profileExportFile)
	}
	return nil
}
