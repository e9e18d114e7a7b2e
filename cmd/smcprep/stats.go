package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/popgenlab/smcprep/pkg/smcfile"
	"github.com/popgenlab/smcprep/pkg/smcprep"
)

var statsSpanCutoff int32

var statsCmd = &cobra.Command{
	Use:   "stats <files...>",
	Short: "Report per-contig observation statistics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := smcfile.ExpandFileArgs(args)
		if err != nil {
			return err
		}
		results, err := smcfile.LoadAll(files, 0)
		if err != nil {
			return err
		}

		fmt.Printf("%-30s %6s %12s %12s %12s %10s %10s\n",
			"file", "piece", "start", "end", "length", "mean_span", "observed")
		for _, res := range results {
			splits, err := smcprep.BreakLongSpans(res.Contig, statsSpanCutoff)
			if err != nil {
				return err
			}
			for i, sp := range splits {
				spans := make([]float64, len(sp.Contig.Data))
				for j, row := range sp.Contig.Data {
					spans[j] = float64(row[0])
				}
				fmt.Printf("%-30s %6d %12d %12d %12d %10.1f %10.4f\n",
					res.Path, i, sp.Attrs.Start, sp.Attrs.End, sp.Attrs.Length,
					stat.Mean(spans, nil), sp.Attrs.NonMissingFrac)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int32Var(&statsSpanCutoff, "span-cutoff", 100000,
		"Split contigs at wholly-missing spans of at least this many bp")
}
