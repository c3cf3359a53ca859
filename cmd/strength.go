package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/gosteel/firecalc/internal/strength"
	"github.com/spf13/cobra"
)

var strengthCmd = &cobra.Command{
	Use:   "strength",
	Short: "Load-utilization analysis at reference temperature",
	Long: `Compute the load-utilization factor gamma_T of a steel member at
the reference temperature (20 °C).

gamma_T compares the acting load to the member's capacity; it is the
strength reduction factor the steel can afford to lose before failure,
and therefore the input to the critical-temperature resolution.

Subcommands:
  tension      - Central tension, gamma_T = N / (A·Ryn·gamma_c)
  compression  - Central compression with buckling (curves a, b, c)
  bending      - Bending with an independent web shear check

Forces are given in kN, moments in kN·m, lengths in m.`,
}

func init() {
	rootCmd.AddCommand(strengthCmd)
}

// printMaterialBlock writes the resolved steel properties.
func printMaterialBlock(mat strength.Material) {
	fmt.Println("MATERIAL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade:\t%s\n", mat.Grade)
	fmt.Fprintf(w, "  Ryn:\t%.0f MPa\n", mat.Ryn)
	fmt.Fprintf(w, "  E:\t%.0f MPa\n", mat.E)
	w.Flush()
	fmt.Println()
}

// printStrengthBlock writes the utilization result with its trace.
func printStrengthBlock(res *strength.Result) {
	fmt.Println("UTILIZATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	switch res.Kind {
	case strength.Compression:
		fmt.Fprintf(w, "  λx:\t%.1f\n", res.LambdaX)
		fmt.Fprintf(w, "  λy:\t%.1f\n", res.LambdaY)
		fmt.Fprintf(w, "  Governing axis:\t%s (λ = %.1f)\n", res.Axis, res.LambdaMax)
		fmt.Fprintf(w, "  λ̄ (conditional):\t%.3f\n", res.LambdaBar)
		fmt.Fprintf(w, "  Stability curve:\t%s\n", res.Curve.Code)
		fmt.Fprintf(w, "  Branch:\t%s\n", res.Method)
		if res.Method == strength.MethodStandard {
			fmt.Fprintf(w, "  δ:\t%.3f\n", res.Delta)
		}
		fmt.Fprintf(w, "  φ:\t%.4f\n", res.Phi)
	case strength.Bending:
		if res.FlangeWebRatio > 0 {
			fmt.Fprintf(w, "  Af/Aw:\t%.3f\n", res.FlangeWebRatio)
		}
		fmt.Fprintf(w, "  c1:\t%.3f\n", res.C1)
		fmt.Fprintf(w, "  γ (bending):\t%.4f\n", res.GammaBending)
		fmt.Fprintf(w, "  γ (shear):\t%.4f\n", res.GammaShear)
		fmt.Fprintf(w, "  Governing mode:\t%s\n", res.GoverningMode)
	}
	w.Flush()
	fmt.Println()

	if res.Fault != strength.FaultNone {
		fmt.Printf("  ⚠ calculation fault: %s — utilization is not a genuine value\n\n", res.Fault)
	}

	gamma := "∞"
	if !math.IsInf(res.GammaT, 1) {
		gamma = fmt.Sprintf("%.4f", res.GammaT)
	}
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  UTILIZATION FACTOR γ_T = %s     \n", gamma)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}
