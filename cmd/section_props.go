package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	propsShape       string
	propsDesignation string
	propsH           float64
	propsB           float64
	propsTw          float64
	propsTf          float64
	propsT           float64
	propsD           float64
)

var sectionPropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Compute cross-section properties",
	Long: `Compute area, moments of inertia, radii of gyration and section
moduli for a parametric or catalog section.

Examples:
  # Parametric I-beam, 200x100 mm with 6 mm web and 10 mm flanges
  firecalc section props --shape ibeam --height 200 --width 100 --tw 6 --tf 10

  # Catalog I-beam No. 20 (GOST 8239)
  firecalc section props --shape ibeam --designation I20

  # Circular pipe, 159 mm outer diameter, 5 mm wall
  firecalc section props --shape circtube -d 159 -t 5`,
	Run: runSectionProps,
}

func init() {
	sectionCmd.AddCommand(sectionPropsCmd)

	sectionPropsCmd.Flags().StringVarP(&propsShape, "shape", "s", "", "Section shape: ibeam, channel, angle, recttube, circtube [required]")
	sectionPropsCmd.Flags().StringVar(&propsDesignation, "designation", "", "Catalog designation (overrides parametric dimensions)")
	sectionPropsCmd.Flags().Float64Var(&propsH, "height", 0, "Section height h (mm)")
	sectionPropsCmd.Flags().Float64Var(&propsB, "width", 0, "Flange width b (mm)")
	sectionPropsCmd.Flags().Float64Var(&propsTw, "tw", 0, "Web thickness (mm)")
	sectionPropsCmd.Flags().Float64Var(&propsTf, "tf", 0, "Flange thickness (mm)")
	sectionPropsCmd.Flags().Float64VarP(&propsT, "thickness", "t", 0, "Wall thickness (mm), tubes")
	sectionPropsCmd.Flags().Float64VarP(&propsD, "diameter", "d", 0, "Outer diameter (mm), circular tubes")

	sectionPropsCmd.MarkFlagRequired("shape")
}

func runSectionProps(cmd *cobra.Command, args []string) {
	p, err := resolveProfile(propsShape, propsDesignation, propsH, propsB, propsTw, propsTf, propsT, propsD)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          STEEL SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	printProfileBlock(p)
}
