package cmd

import (
	"fmt"

	"github.com/gosteel/firecalc/internal/strength"
	"github.com/spf13/cobra"
)

var (
	bendSection  sectionFlags
	bendMaterial materialFlags
	bendMoment   float64 // kN·m
	bendShear    float64 // kN
)

var strengthBendingCmd = &cobra.Command{
	Use:   "bending",
	Short: "Utilization of a bent member with a web shear check",
	Long: `Compute the bending utilization gamma_T = M / (c1·Wx·Ryn·gamma_c)
together with the web shear check gamma = Q·Sx / (Ix·tw·Rs·gamma_c).
The worse of the two modes governs.

The plastic-section factor c1 applies to open rolled shapes and depends
on the flange-to-web area ratio.

Examples:
  # Simply supported I-beam No. 30, M = 120 kN·m, Q = 80 kN
  firecalc strength bending --shape ibeam --designation I30 \
      --moment 120 --shear 80

  # Pure bending on a pipe (no shear check)
  firecalc strength bending --shape circtube --designation 159x5 --moment 15`,
	Run: runStrengthBending,
}

func init() {
	strengthCmd.AddCommand(strengthBendingCmd)

	bendSection.register(strengthBendingCmd)
	bendMaterial.register(strengthBendingCmd)
	strengthBendingCmd.Flags().Float64VarP(&bendMoment, "moment", "M", 0, "Bending moment M (kN·m) [required]")
	strengthBendingCmd.Flags().Float64VarP(&bendShear, "shear", "Q", 0, "Shear force Q (kN)")
	strengthBendingCmd.MarkFlagRequired("moment")
}

func runStrengthBending(cmd *cobra.Command, args []string) {
	if bendMoment <= 0 {
		fmt.Println("Error: bending moment must be positive.")
		return
	}
	if bendShear < 0 {
		fmt.Println("Error: shear force cannot be negative.")
		return
	}

	p, err := bendSection.profile()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	mat, err := bendMaterial.material(p)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	res := strength.ComputeBending(bendMoment*1e6, bendShear*1e3, p, mat)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BENDING WITH SHEAR - UTILIZATION FACTOR")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	printProfileBlock(p)
	printMaterialBlock(mat)
	printStrengthBlock(&res)
}
