package smcprep

import (
	"errors"
	"fmt"
)

// Error taxonomy. Callers discriminate with errors.Is; calibration and
// inversion failures are fatal to the calling analysis step and are never
// retried here.
var (
	// ErrFormat indicates a malformed piece specification or data record.
	ErrFormat = errors.New("format error")

	// ErrDomain indicates invalid numeric input: an empty or inverted time
	// range, an infeasible probability target, or a rate function that is
	// not monotone.
	ErrDomain = errors.New("domain error")

	// ErrEmptyInput indicates a zero-length contig reaching the codec.
	ErrEmptyInput = errors.New("empty observation matrix")

	// ErrNoConverge indicates the root finder exhausted its iteration cap.
	ErrNoConverge = errors.New("root finder did not converge")
)

// ErrNonMonotone indicates an invalid model whose cumulative rate is not
// strictly increasing.
var ErrNonMonotone = fmt.Errorf("%w: rate function not strictly increasing", ErrDomain)
