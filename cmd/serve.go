package cmd

import (
	"github.com/alexiusacademia/gopier/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort      int
	serveMaxLevels uint16
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dataset as JSON over HTTP",
	Long: `Build the dataset once and serve it over HTTP.

Endpoints:
  GET  /api/health            status and dataset height
  GET  /api/sections          pier sections
  GET  /api/forces            pier forces
  GET  /api/stress            stress of the base dataset
  GET  /api/summary           peak stress per pier
  POST /api/stress/calculate  recompute with a StressParams body:
       {"loadFactors": {"gravity": 1.2, "wind": 1.6, "seismic": 1.0},
        "levelRange": [1, 50]}

Examples:
  gopier serve
  gopier serve --port 8080 --levels 200`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.New(newDataset(), servePort, serveMaxLevels).Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "P", 3000, "HTTP server port")
	serveCmd.Flags().Uint16Var(&serveMaxLevels, "max-levels", server.DefaultLevelLimit, "Highest level a calculate request may extend to")
}
