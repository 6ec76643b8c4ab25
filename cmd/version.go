package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gopier/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gopier",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gopier v%s\n", version.Version)
		fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
		fmt.Println("Pier Stress Dataset Generator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
