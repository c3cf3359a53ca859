package cmd

import (
	"fmt"

	"github.com/gosteel/firecalc/internal/strength"
	"github.com/spf13/cobra"
)

var (
	tensionSection  sectionFlags
	tensionMaterial materialFlags
	tensionForce    float64 // kN
)

var strengthTensionCmd = &cobra.Command{
	Use:   "tension",
	Short: "Utilization of a centrally tensioned member",
	Long: `Compute gamma_T = N / (A·Ryn·gamma_c) for central tension.

Examples:
  # Catalog I-beam No. 20 under 300 kN tension
  firecalc strength tension --shape ibeam --designation I20 --force 300

  # Parametric angle is not supported; use the catalog
  firecalc strength tension --shape angle --designation L75x6 --force 120`,
	Run: runStrengthTension,
}

func init() {
	strengthCmd.AddCommand(strengthTensionCmd)

	tensionSection.register(strengthTensionCmd)
	tensionMaterial.register(strengthTensionCmd)
	strengthTensionCmd.Flags().Float64VarP(&tensionForce, "force", "N", 0, "Axial tension force N (kN) [required]")
	strengthTensionCmd.MarkFlagRequired("force")
}

func runStrengthTension(cmd *cobra.Command, args []string) {
	if tensionForce <= 0 {
		fmt.Println("Error: tension force must be positive.")
		return
	}

	p, err := tensionSection.profile()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	mat, err := tensionMaterial.material(p)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	res := strength.ComputeTension(tensionForce*1e3, p, mat)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          CENTRAL TENSION - UTILIZATION FACTOR")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	printProfileBlock(p)
	printMaterialBlock(mat)
	printStrengthBlock(&res)
}
