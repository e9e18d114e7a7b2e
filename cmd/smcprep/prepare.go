package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/popgenlab/smcprep/pkg/smcfile"
	"github.com/popgenlab/smcprep/pkg/smcprep"
)

var (
	nonsegCutoff int32
	spanCutoff   int32
	outputDir    string
	loadWorkers  int
)

var prepareCmd = &cobra.Command{
	Use:   "prepare [flags] <files...>",
	Short: "Recode, split and compress observation files",
	Long: `Prepare SMC++ observation files for inference.

Each contig is optionally recoded (long homozygous non-missing runs to
missing), split at long wholly-missing spans, and run-length compressed.

File arguments starting with @ name a list file with one path per line:
  smcprep prepare --output-dir prepared @chromosomes.txt

Without --nonseg-cutoff, suspicious homozygosity runs are only reported;
pass an explicit cutoff to have them recoded to missing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := smcfile.ExpandFileArgs(args)
		if err != nil {
			return err
		}
		results, err := smcfile.LoadAll(files, loadWorkers)
		if err != nil {
			return err
		}

		for _, res := range results {
			if err := prepareOne(res); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	prepareCmd.Flags().Int32Var(&nonsegCutoff, "nonseg-cutoff", 0,
		"Recode homozygous non-missing runs longer than this many bp to missing (0 = report only)")
	prepareCmd.Flags().Int32Var(&spanCutoff, "span-cutoff", 100000,
		"Split contigs at wholly-missing spans of at least this many bp")
	prepareCmd.Flags().StringVar(&outputDir, "output-dir", "",
		"Write prepared contigs to this directory (default: report only)")
	prepareCmd.Flags().IntVar(&loadWorkers, "workers", 0,
		"Number of parallel loading workers (0 = auto-detect)")
}

func prepareOne(res smcfile.Result) error {
	cfg := smcprep.DefaultRecodeConfig()
	if nonsegCutoff > 0 {
		cfg = smcprep.RecodeConfig{Cutoff: nonsegCutoff, WarnOnly: false}
	}
	smcprep.RecodeNonseg(res.Contig, cfg)

	splits, err := smcprep.BreakLongSpans(res.Contig, spanCutoff)
	if err != nil {
		return err
	}

	for i, sp := range splits {
		data, err := smcprep.CompressRepeatedObs(sp.Contig.Data)
		if err != nil {
			return fmt.Errorf("%s piece %d: %w", res.Path, i, err)
		}
		sp.Contig.Data = data

		if outputDir == "" {
			fmt.Printf("%s[%d]: %d-%d, %d bp, %d rows, %.4f observed\n",
				res.Path, i, sp.Attrs.Start, sp.Attrs.End, sp.Attrs.Length,
				len(data), sp.Attrs.NonMissingFrac)
			continue
		}
		out := filepath.Join(outputDir, splitName(res.Path, i))
		w := smcfile.NewWriter(out, res.Header)
		if err := w.WriteContig(sp.Contig); err != nil {
			return err
		}
	}
	return nil
}

// splitName derives the output name for piece i of an input file:
// chr1.smc.gz becomes chr1.0.smc.gz.
func splitName(path string, i int) string {
	base := filepath.Base(path)
	for _, suffix := range []string{".gz", ".smc"} {
		base = strings.TrimSuffix(base, suffix)
	}
	return fmt.Sprintf("%s.%d.smc.gz", base, i)
}
