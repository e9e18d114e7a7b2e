package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/popgenlab/smcprep/pkg/smcprep"
)

var (
	gridT1     float64
	gridTK     float64
	gridPieces string
	gridOffset float64
)

var timePointsCmd = &cobra.Command{
	Use:   "timepoints --t1 0.002 --tK 15 --pieces 32*1+16*2",
	Short: "Build log-spaced time interval durations",
	Long: `Expand a PSMC-style piece specification into interval durations on
a logarithmic time grid. The first output value is t1; the rest are
durations which accumulate to tK.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pieces, err := smcprep.ExtractPieces(gridPieces)
		if err != nil {
			return err
		}
		tp, err := smcprep.ConstructTimePoints(gridT1, gridTK, pieces, gridOffset)
		if err != nil {
			return err
		}
		cum := tp[0]
		fmt.Printf("%-14s %-14s\n", "duration", "end")
		fmt.Printf("%-14g %-14g\n", tp[0], cum)
		for _, d := range tp[1:] {
			cum += d
			fmt.Printf("%-14g %-14g\n", d, cum)
		}
		return nil
	},
}

func init() {
	timePointsCmd.Flags().Float64Var(&gridT1, "t1", 0, "First time point")
	timePointsCmd.Flags().Float64Var(&gridTK, "tK", 0, "Last time point")
	timePointsCmd.Flags().StringVar(&gridPieces, "pieces", "32*1+16*2",
		"Piece specification (count*span tokens joined by +)")
	timePointsCmd.Flags().Float64Var(&gridOffset, "offset", 0,
		"Offset added to t1 before log spacing")
	_ = timePointsCmd.MarkFlagRequired("t1")
	_ = timePointsCmd.MarkFlagRequired("tK")
}
