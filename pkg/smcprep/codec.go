package smcprep

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// DefaultNonsegCutoff is the fallback homozygosity-run cutoff in base
// pairs when the caller did not choose one.
const DefaultNonsegCutoff = 50000

// CompressRepeatedObs merges consecutive rows whose non-span fields are
// identical, summing their spans. The total span is preserved, no two
// adjacent output rows agree in their non-span fields, and the operation
// is idempotent.
func CompressRepeatedObs(data [][]int32) ([][]int32, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("compress: %w", ErrEmptyInput)
	}
	out := make([][]int32, 0, len(data))
	run := cloneRow(data[0])
	for _, row := range data[1:] {
		if sameObs(run, row) {
			run[colSpan] += row[colSpan]
			continue
		}
		out = append(out, run)
		run = cloneRow(row)
	}
	return append(out, run), nil
}

// DecompressPolymorphicSpans expands every row with span > 1 that could
// contain a polymorphic site — anything neither wholly missing nor
// non-segregating — into span copies of width 1. Well-formed long runs
// stay compressed; anything ambiguous is expanded rather than guessed at.
func DecompressPolymorphicSpans(data [][]int32) [][]int32 {
	out := make([][]int32, 0, len(data))
	for _, row := range data {
		span := row[colSpan]
		if span <= 1 || rowAllMissing(row) || rowNonSeg(row) {
			out = append(out, row)
			continue
		}
		for i := int32(0); i < span; i++ {
			site := cloneRow(row)
			site[colSpan] = 1
			out = append(out, site)
		}
	}
	return out
}

// RecodeConfig controls RecodeNonseg. WarnOnly is set when Cutoff is the
// fallback default rather than a deliberate caller choice: matching runs
// are then reported but left untouched.
type RecodeConfig struct {
	Cutoff   int32
	WarnOnly bool
}

// DefaultRecodeConfig returns the warn-only fallback configuration.
func DefaultRecodeConfig() RecodeConfig {
	return RecodeConfig{Cutoff: DefaultNonsegCutoff, WarnOnly: true}
}

// RecodeNonseg finds runs longer than cfg.Cutoff base pairs in which every
// population shows dist=0 and derived=0. Such runs are unlikely to be
// informative for the HMM. With WarnOnly set they are only reported;
// otherwise they are recoded to missing in place.
func RecodeNonseg(c *Contig, cfg RecodeConfig) {
	var hits []int
	for i, row := range c.Data {
		if row[colSpan] > cfg.Cutoff && rowHomozygousRun(row) {
			hits = append(hits, i)
		}
	}
	if len(hits) == 0 {
		return
	}
	spans := make([]int32, len(hits))
	for i, h := range hits {
		spans[i] = c.Data[h][colSpan]
	}
	if cfg.WarnOnly {
		log.Warnf("Long runs of homozygosity in contig %s: %v (base pairs)", c.FN, spans)
		return
	}
	for _, h := range hits {
		row := c.Data[h]
		for p := 0; p < numPops(row); p++ {
			row[distCol(p)] = -1
			row[totalCol(p)] = 0
		}
	}
	log.Debugf("Long runs of homozygosity (converted to missing) in contig %s: %v (base pairs)", c.FN, spans)
}
