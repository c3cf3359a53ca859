package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gosteel/firecalc/internal/diagram"
	"github.com/gosteel/firecalc/internal/export"
	"github.com/gosteel/firecalc/internal/thermal"
	"github.com/spf13/cobra"
)

var (
	simAmV   float64
	simCrit  float64
	simMax   float64
	simDt    float64
	simAscii bool
	simChart string
	simCSV   string
	simXLSX  string
)

var heatSimulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate the heating of one member",
	Long: `Time-step the heat balance for a member with a given section
factor until the critical temperature is crossed or the time horizon
runs out.

Examples:
  # Am/V = 150 1/m, critical temperature 500 °C, 60 min horizon
  firecalc heat simulate --amv 150 --crit 500 --max 60

  # With a terminal chart and CSV export
  firecalc heat simulate --amv 100 --crit 550 --max 90 --ascii --csv run.csv`,
	Run: runHeatSimulate,
}

func init() {
	heatCmd.AddCommand(heatSimulateCmd)

	heatSimulateCmd.Flags().Float64Var(&simAmV, "amv", 0, "Section factor Am/V (1/m) [required]")
	heatSimulateCmd.Flags().Float64Var(&simCrit, "crit", 0, "Critical steel temperature (°C) [required]")
	heatSimulateCmd.Flags().Float64Var(&simMax, "max", 180, "Time horizon (min)")
	heatSimulateCmd.Flags().Float64Var(&simDt, "dt", 1, "Time step (s)")
	heatSimulateCmd.Flags().BoolVar(&simAscii, "ascii", false, "Plot the heating curves in the terminal")
	heatSimulateCmd.Flags().StringVar(&simChart, "chart", "", "Save a heating chart image (.png/.svg/.pdf)")
	heatSimulateCmd.Flags().StringVar(&simCSV, "csv", "", "Save the heating history as CSV")
	heatSimulateCmd.Flags().StringVar(&simXLSX, "xlsx", "", "Save the heating history as an Excel workbook")
	heatSimulateCmd.MarkFlagRequired("amv")
	heatSimulateCmd.MarkFlagRequired("crit")
}

func runHeatSimulate(cmd *cobra.Command, args []string) {
	sim, err := thermal.Simulate(simAmV, simCrit, simMax, simDt)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          UNPROTECTED MEMBER HEATING - GOST 30247 REGIME")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printSimulationBlock(sim)

	if simAscii {
		fmt.Println(diagram.HeatingChartASCII(sim, 70, 15))
		fmt.Println()
	}

	exportSimulation(sim, simChart, simCSV, simXLSX)
}

// printSimulationBlock writes the thermal inputs and result.
func printSimulationBlock(sim *thermal.Simulation) {
	fmt.Println("THERMAL ANALYSIS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section factor (Am/V):\t%.1f 1/m\n", sim.AmV)
	fmt.Fprintf(w, "  Reduced thickness:\t%.2f mm\n", 1000.0/sim.AmV)
	fmt.Fprintf(w, "  Critical temperature:\t%.1f °C\n", sim.CritTempC)
	fmt.Fprintf(w, "  Time horizon:\t%.0f min\n", sim.MaxTimeMin)
	fmt.Fprintf(w, "  Time step:\t%.1f s\n", sim.DtSec)
	fmt.Fprintf(w, "  Final steel temperature:\t%.1f °C\n", sim.History[len(sim.History)-1].SteelC)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("FIRE-RESISTANCE RATING", []string{
		fmt.Sprintf("Rating: %s", sim.Rating()),
		fmt.Sprintf("State:  %s", sim.State),
	}))
	fmt.Println()
}

// exportSimulation writes the requested export files, reporting each.
func exportSimulation(sim *thermal.Simulation, chart, csvPath, xlsxPath string) {
	if chart != "" {
		if err := diagram.ExportHeatingChart(sim, chart); err != nil {
			fmt.Printf("Error: chart export failed: %v\n", err)
		} else {
			fmt.Printf("  Chart saved to %s\n", chart)
		}
	}
	if csvPath != "" {
		if err := export.ExportCSV(csvPath, sim); err != nil {
			fmt.Printf("Error: CSV export failed: %v\n", err)
		} else {
			fmt.Printf("  History saved to %s\n", csvPath)
		}
	}
	if xlsxPath != "" {
		if err := export.ExportXLSX(xlsxPath, sim); err != nil {
			fmt.Printf("Error: XLSX export failed: %v\n", err)
		} else {
			fmt.Printf("  Workbook saved to %s\n", xlsxPath)
		}
	}
}
