package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gosteel/firecalc/internal/sp16"
	"github.com/spf13/cobra"
)

var (
	critGamma float64
	critGrade string
)

var crittempCmd = &cobra.Command{
	Use:   "crittemp",
	Short: "Resolve the critical steel temperature from gamma_T",
	Long: `Invert the strength reduction table of the steel's group to find
the temperature at which the retained strength equals the utilization
factor gamma_T.

gamma_T >= 1 means the member is overloaded already at 20 °C and has no
elevated-temperature margin; gamma_T at or below the table's top-node
factor saturates at 800 °C.

Examples:
  firecalc crittemp --gamma 0.65 --grade C245
  firecalc crittemp --gamma 0.30 --grade C390`,
	Run: runCrittemp,
}

func init() {
	rootCmd.AddCommand(crittempCmd)

	crittempCmd.Flags().Float64Var(&critGamma, "gamma", 0, "Utilization factor gamma_T [required]")
	crittempCmd.Flags().StringVarP(&critGrade, "grade", "g", "C245", "Steel grade (selects the strength group)")
	crittempCmd.MarkFlagRequired("gamma")
}

func runCrittemp(cmd *cobra.Command, args []string) {
	if critGamma <= 0 {
		fmt.Println("Error: gamma_T must be positive.")
		return
	}
	if !sp16.IsKnownGrade(critGrade) {
		fmt.Printf("Error: unknown steel grade %q (known: %v)\n", critGrade, sp16.Grades)
		return
	}

	group := sp16.GroupForGrade(critGrade)
	table := sp16.ReductionTableFor(group)
	res := table.CriticalTemperature(critGamma)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          CRITICAL STEEL TEMPERATURE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade:\t%s (%s group)\n", critGrade, group)
	fmt.Fprintf(w, "  γ_T:\t%.4f\n", critGamma)
	if res.Trace != nil {
		fmt.Fprintf(w, "  Bracketing nodes:\t(%.0f °C, %.2f) … (%.0f °C, %.2f)\n",
			res.Trace.T1, res.Trace.F1, res.Trace.T2, res.Trace.F2)
	}
	w.Flush()
	fmt.Println()

	switch {
	case critGamma >= 1.0:
		fmt.Println("  The member is fully utilized at the reference temperature;")
		fmt.Println("  it has no margin for elevated-temperature strength loss.")
	case res.Saturated:
		fmt.Println("  γ_T is below the top table node; the critical temperature")
		fmt.Println("  saturates at the table boundary.")
	}
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  CRITICAL TEMPERATURE t_cr = %.1f °C     \n", res.TempC)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}
