package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gopier/internal/applog"
	"github.com/alexiusacademia/gopier/internal/tower"
	"github.com/alexiusacademia/gopier/internal/version"
	"github.com/powerman/structlog"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	levelCount uint16
)

// log is replaced once the log level is known
var log = structlog.New(structlog.KeyUnit, "cmd")

var rootCmd = &cobra.Command{
	Use:   "gopier",
	Short: "Pier Stress Dataset Generator",
	Long: `gopier - Go Pier Stress Dataset Generator

A CLI tool that synthesizes a deterministic dataset for the structural
piers of a multi-story building.

For every level and pier it generates:
  - Cross-section dimensions that taper linearly with height
  - Gravity, wind and seismic forces distributed over the height
  - Stress from joining sections and forces on (level, pier)

Stress can be recomputed under custom load factors and level ranges,
including NSCP 2015 load combination presets.

The curves are illustrative and are not code-compliant calculations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applog.Init(logLevel)
		log = structlog.New(structlog.KeyUnit, "cmd")
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gopier v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Pier Stress Dataset Generator                        ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool that generates pier sections, forces and stress")
		fmt.Println("  for a multi-story building.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Tapered pier sections and height-distributed forces")
		fmt.Println("    • Stress join with custom load factors and level ranges")
		fmt.Println("    • NSCP load combination presets and governing stress")
		fmt.Println("    • Stress profiles as ASCII charts or PNG/SVG/PDF images")
		fmt.Println("    • JSON HTTP server for the dataset")
		fmt.Println()
		fmt.Println("  Use 'gopier --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, err")
	rootCmd.PersistentFlags().Uint16Var(&levelCount, "levels", tower.DefaultMaxLevel, "Number of levels the dataset is generated for")
}

// newDataset builds the dataset every command works from
func newDataset() *tower.Dataset {
	ds := tower.Build(levelCount)
	log.Debug("dataset built", "levels", ds.MaxLevel, "sections", len(ds.Sections), "forces", len(ds.Forces))
	return ds
}
