package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/popgenlab/smcprep/pkg/smcprep"
)

var (
	modelPath string
	numStates int
)

var hiddenStatesCmd = &cobra.Command{
	Use:   "hiddenstates --model model.json",
	Short: "Balance hidden-state breakpoints under a fitted model",
	Long: `Compute time breakpoints such that each hidden state carries the
same coalescence probability under the fitted model. Breakpoints are
printed in generations, one per line, from 0 to infinity.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(modelPath)
		if err != nil {
			return err
		}
		var model smcprep.PiecewiseModel
		if err := json.Unmarshal(data, &model); err != nil {
			return fmt.Errorf("failed to parse model %s: %w", modelPath, err)
		}

		bp, err := smcprep.BalanceHiddenStates(&model, numStates)
		if err != nil {
			return err
		}
		for _, b := range bp {
			fmt.Printf("%g\n", b)
		}
		return nil
	},
}

func init() {
	hiddenStatesCmd.Flags().StringVar(&modelPath, "model", "",
		"Fitted piecewise model (JSON)")
	hiddenStatesCmd.Flags().IntVarP(&numStates, "states", "M", 32,
		"Number of hidden states")
	_ = hiddenStatesCmd.MarkFlagRequired("model")
}
