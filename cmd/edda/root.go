package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "edda",
	Short: "Edda - deep probabilistic programming for Go",
	Long: `Edda turns probabilistic models written as Go functions into
posterior inferences: variational inference, Hamiltonian Monte Carlo
and adversarial training over a common tensor and autodiff core.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Edda %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
}
