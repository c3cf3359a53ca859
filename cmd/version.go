package cmd

import (
	"fmt"

	"github.com/gosteel/firecalc/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of firecalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("firecalc v%s\n", version.Version)
		fmt.Println("Steel Member Fire Resistance Calculator")
		fmt.Printf("Build: %s, commit %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
