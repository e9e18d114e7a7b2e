package smcprep

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ConstructTimePoints builds the non-uniform time discretization for the
// hidden-state grid. sum(pieces)+1 log-spaced points are laid out between
// t1+offset and tK; their first differences are grouped by the piece
// sizes and summed, one duration per piece. The result is
// [t1, dur_1, ..., dur_k] — durations, not breakpoints; the caller
// accumulates them.
func ConstructTimePoints(t1, tK float64, pieces []int, offset float64) ([]float64, error) {
	if offset < 0 {
		return nil, fmt.Errorf("offset %g is negative: %w", offset, ErrDomain)
	}
	if !(t1 < tK) {
		return nil, fmt.Errorf("t1 %g is not below tK %g: %w", t1, tK, ErrDomain)
	}
	if tK <= t1+offset {
		return nil, fmt.Errorf("tK %g does not exceed t1+offset %g: %w", tK, t1+offset, ErrDomain)
	}
	if !(t1+offset > 0) {
		return nil, fmt.Errorf("grid start %g is not positive: %w", t1+offset, ErrDomain)
	}
	if len(pieces) == 0 {
		return nil, fmt.Errorf("no pieces: %w", ErrDomain)
	}
	n := 0
	for i, p := range pieces {
		if p < 1 {
			return nil, fmt.Errorf("piece %d has span %d: %w", i, p, ErrDomain)
		}
		n += p
	}

	grid := make([]float64, n+1)
	floats.LogSpan(grid, t1+offset, tK)
	diffs := make([]float64, n)
	for i := range diffs {
		diffs[i] = grid[i+1] - grid[i]
	}

	out := make([]float64, len(pieces)+1)
	out[0] = t1
	idx := 0
	for i, p := range pieces {
		out[i+1] = floats.Sum(diffs[idx : idx+p])
		idx += p
	}
	return out, nil
}
