package cmd

import (
	"github.com/alexiusacademia/gopier/internal/tower"
	"github.com/spf13/cobra"
)

var (
	sectionsFilter filterFlags
	forcesFilter   filterFlags
	stressFilter   filterFlags
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the pier cross-sections of every level",
	Long: `List the width and depth of every pier at every level.

Dimensions start at the base values of each pier at level 1 and taper
linearly to 40% at the top level.

Examples:
  gopier sections --pier P1
  gopier sections --levels 150 --from 140 --format csv`,
	RunE: runSections,
}

var forcesCmd = &cobra.Command{
	Use:   "forces",
	Short: "List the pier forces of every level and load combination",
	Long: `List the gravity, wind and seismic force of every pier at every level.

  Gravity - decreases with height, 15% remains at the top
  Wind    - decreases with height, 30% remains at the top
  Seismic - triangular, peaks at mid-height

Examples:
  gopier forces --pier P2 --from 1 --to 10
  gopier forces --format json`,
	RunE: runForces,
}

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "List the stress of every pier, level and load combination",
	Long: `Join sections and forces on (level, pier) and list area, force and stress.

The ID column combines pier and level, so the three combinations of one
pier at one level share an ID.

Examples:
  gopier stress --pier P1 --to 5
  gopier stress --format yaml`,
	RunE: runStress,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(forcesCmd)
	rootCmd.AddCommand(stressCmd)

	sectionsFilter.register(sectionsCmd)
	forcesFilter.register(forcesCmd)
	stressFilter.register(stressCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	pier, err := sectionsFilter.pierID()
	if err != nil {
		return err
	}
	ds := newDataset()
	params, err := sectionsFilter.params(ds.MaxLevel)
	if err != nil {
		return err
	}
	levels := params.LevelRange

	rows := []tower.Section{}
	for _, s := range ds.Sections {
		if sectionsFilter.match(levels, pier, s.Level, s.Pier) {
			rows = append(rows, s)
		}
	}
	return render(cmd.OutOrStdout(), sectionsFilter.outputFormat(), sectionReport(rows))
}

func runForces(cmd *cobra.Command, args []string) error {
	pier, err := forcesFilter.pierID()
	if err != nil {
		return err
	}
	ds := newDataset()
	params, err := forcesFilter.params(ds.MaxLevel)
	if err != nil {
		return err
	}
	levels := params.LevelRange

	rows := []tower.Force{}
	for _, f := range ds.Forces {
		if forcesFilter.match(levels, pier, f.Level, f.Pier) {
			rows = append(rows, f)
		}
	}
	return render(cmd.OutOrStdout(), forcesFilter.outputFormat(), forceReport(rows))
}

func runStress(cmd *cobra.Command, args []string) error {
	pier, err := stressFilter.pierID()
	if err != nil {
		return err
	}
	ds := newDataset()
	params, err := stressFilter.params(ds.MaxLevel)
	if err != nil {
		return err
	}
	levels := params.LevelRange

	rows := []tower.StressResult{}
	for _, s := range ds.Stress {
		if stressFilter.match(levels, pier, s.Level, s.Pier) {
			rows = append(rows, s)
		}
	}
	return render(cmd.OutOrStdout(), stressFilter.outputFormat(), stressReport("PIER STRESS", rows))
}
