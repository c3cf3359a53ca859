package cmd

import (
	"github.com/spf13/cobra"
)

var heatCmd = &cobra.Command{
	Use:   "heat",
	Short: "Unprotected-member heating under the standard fire regime",
	Long: `Simulate the heating of an unprotected steel member under the
GOST 30247 standard temperature regime using a lumped-mass heat
balance.

The member is characterized by a single number, the section factor
Am/V (heated perimeter over volume, 1/m): the thinner the equivalent
metal thickness, the faster the member heats.

Subcommands:
  simulate  - Run one heating simulation for a given Am/V
  sweep     - Run a batch of simulations across an Am/V range`,
}

func init() {
	rootCmd.AddCommand(heatCmd)
}
