package cmd

import (
	"fmt"

	"github.com/gosteel/firecalc/internal/section"
	"github.com/spf13/cobra"
)

var catalogShape string

var sectionCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List catalog designations for a shape",
	Long: `List the rolled-profile designations available in the built-in
GOST catalogs.

Examples:
  firecalc section catalog --shape ibeam
  firecalc section catalog --shape angle`,
	Run: runSectionCatalog,
}

func init() {
	sectionCmd.AddCommand(sectionCatalogCmd)

	sectionCatalogCmd.Flags().StringVarP(&catalogShape, "shape", "s", "", "Section shape [required]")
	sectionCatalogCmd.MarkFlagRequired("shape")
}

func runSectionCatalog(cmd *cobra.Command, args []string) {
	shape, err := section.ParseShape(catalogShape)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	names := section.DefaultCatalog().List(shape)
	if len(names) == 0 {
		fmt.Printf("No catalog entries for shape %s (rectangular tubes are parametric only).\n", shape)
		return
	}

	fmt.Printf("Catalog designations for %s (%d entries):\n", shape, len(names))
	for _, n := range names {
		fmt.Printf("  %s\n", n)
	}
}
