// Command simlab is the console front end for the simulation packages:
// permanent estimator comparisons and dice-game runs. It only formats
// numeric results produced by the libraries; all semantics live there.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simlab",
		Short: "Simulation lab - permanent estimation and dice games",
		Long: `simlab runs the simulation experiments in this module from the
command line: exact vs Monte Carlo permanent estimation on generated
matrices, and seeded dice-game sessions with optional wagering.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newPermanentCmd(),
		newDiceCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
