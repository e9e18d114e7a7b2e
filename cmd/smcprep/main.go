package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "smcprep",
	Short: "SMC++ data preparation and hidden-state calibration",
	Long: `smcprep prepares genomic observation sequences for HMM-based
demographic inference.

It run-length encodes per-site genotype records, splits contigs at long
missing stretches, and calibrates the time discretization of a
piecewise-constant coalescent model into hidden states of equal
coalescence probability.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(hiddenStatesCmd)
	rootCmd.AddCommand(timePointsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("smcprep version 0.1.0")
	},
}
