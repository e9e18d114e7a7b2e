package smcprep

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// SplitAttrs describes one sub-contig produced by BreakLongSpans:
// genomic start/end offsets in the parent, total retained length, and the
// fraction of sites with a non-missing distinguished observation.
type SplitAttrs struct {
	Start          int64
	End            int64
	Length         int64
	NonMissingFrac float64
}

// SplitContig bundles a sub-contig with its attributes.
type SplitContig struct {
	Contig *Contig
	Attrs  SplitAttrs
}

// BreakLongSpans cuts a contig at every wholly missing row spanning at
// least spanCutoff base pairs. Every resulting sub-contig starts with an
// inserted width-1 missing marker row and inherits the parent's metadata.
// Stripping the markers and concatenating the pieces reconstructs the
// parent's data matrix.
func BreakLongSpans(c *Contig, spanCutoff int32) ([]SplitContig, error) {
	cols, err := distinguishedCols(c)
	if err != nil {
		return nil, err
	}
	var cuts []int
	var cutSpans []int32
	for i, row := range c.Data {
		if row[colSpan] >= spanCutoff && rowAllMissing(row) {
			cuts = append(cuts, i)
			cutSpans = append(cutSpans, row[colSpan])
		}
	}
	if len(cuts) > 0 {
		log.Debugf("Long missing spans in contig %s: %v (base pairs)", c.FN, cutSpans)
	}

	// positions[i] is the genomic offset of row i in the parent.
	positions := make([]float64, len(c.Data)+1)
	for i, row := range c.Data {
		positions[i+1] = float64(row[colSpan])
	}
	floats.CumSum(positions[1:], positions[1:])

	var out []SplitContig
	start := 0
	for _, cut := range append(cuts, len(c.Data)) {
		sub := &Contig{
			Data: make([][]int32, 0, cut-start+1),
			PID:  c.PID,
			N:    c.N,
			A:    c.A,
			FN:   c.FN,
		}
		sub.Data = append(sub.Data, missingRow(c.Width()))
		for _, row := range c.Data[start:cut] {
			sub.Data = append(sub.Data, cloneRow(row))
		}
		out = append(out, SplitContig{
			Contig: sub,
			Attrs:  splitAttrs(sub, int64(positions[start]), int64(positions[cut]), cols),
		})
		start = cut + 1
	}
	return out, nil
}

// distinguishedCols selects the columns carrying distinguished-lineage
// observations. With one distinguished lineage in the first population the
// second carries the other (columns 1 and 4); with both in the first
// population only column 1 applies.
func distinguishedCols(c *Contig) ([]int, error) {
	switch c.A[0] {
	case 1:
		if c.NumPop() < 2 {
			return nil, fmt.Errorf("contig %s: single population with split distinguished pair: %w", c.FN, ErrFormat)
		}
		return []int{distCol(0), distCol(1)}, nil
	case 2:
		return []int{distCol(0)}, nil
	}
	return nil, fmt.Errorf("contig %s: distinguished multiplicity %d: %w", c.FN, c.A[0], ErrFormat)
}

func splitAttrs(sub *Contig, start, end int64, cols []int) SplitAttrs {
	length := sub.TotalSpan()
	var observed int64
	for _, row := range sub.Data {
		ok := true
		for _, col := range cols {
			if row[col] < 0 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		for _, col := range cols {
			observed += int64(row[col])
		}
	}
	return SplitAttrs{
		Start:          start,
		End:            end,
		Length:         length,
		NonMissingFrac: float64(observed) / float64(length),
	}
}
