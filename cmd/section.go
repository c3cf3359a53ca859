package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Section property calculation and GOST catalogs",
	Long: `Compute cross-section properties for steel members.

Sections can be defined parametrically (height, width, thicknesses in mm)
or picked from the built-in rolled-profile catalogs:

  ibeam     GOST 8239 rolled I-beams
  channel   GOST 8240 channels
  angle     GOST 8509-93 equal angles (catalog only)
  recttube  rectangular hollow sections (parametric)
  circtube  GOST 10704 electric-welded pipes

Subcommands:
  props    - Compute and print section properties
  catalog  - List available catalog designations for a shape`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
