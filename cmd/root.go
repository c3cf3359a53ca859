package cmd

import (
	"fmt"
	"os"

	"github.com/gosteel/firecalc/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "firecalc",
	Short: "Steel Member Fire Resistance Calculator",
	Long: `firecalc - Fire Resistance of Steel Structural Members

A CLI tool for determining the actual fire-resistance rating of loaded
steel members per SP 16.13330 under the GOST 30247 standard fire regime.

This tool helps fire-safety engineers perform:
  - Section property calculation (parametric or GOST catalogs)
  - Load-utilization analysis (tension, compression, bending)
  - Critical temperature resolution from strength reduction tables
  - Unprotected-member heating simulation and rating

All calculations are carried out in N, mm, MPa internally.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   firecalc v%-45s║\n", version.Version)
		fmt.Println("  ║   Steel Member Fire Resistance Calculator                 ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the fire-resistance rating of loaded steel")
		fmt.Println("  members per SP 16.13330 and GOST 30247.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Section properties for I-beams, channels, angles and tubes")
		fmt.Println("    • Utilization factors with buckling per stability curves a/b/c")
		fmt.Println("    • Critical temperature from strength reduction tables")
		fmt.Println("    • Lumped-mass heating simulation with CSV/XLSX/PDF export")
		fmt.Println()
		fmt.Println("  Use 'firecalc --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
