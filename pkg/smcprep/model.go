package smcprep

import (
	"fmt"
	"math"
	"sort"
)

// PiecewiseModel is a piecewise-constant demographic model: coalescent
// rate A[i] holds for S[i] coalescent time units, with the final piece
// open-ended. Times are in units of 2*N0 generations. Models are
// read-only inputs to the calibrator.
type PiecewiseModel struct {
	A   []float64 `json:"a"`
	S   []float64 `json:"s"`
	N0  float64   `json:"N0"`
	PID string    `json:"pid"`
}

// Knots returns the piece start times [0, s0, s0+s1, ...].
func (m *PiecewiseModel) Knots() []float64 {
	knots := make([]float64, len(m.S))
	for i := 1; i < len(m.S); i++ {
		knots[i] = knots[i-1] + m.S[i-1]
	}
	return knots
}

func (m *PiecewiseModel) validate() error {
	if len(m.A) == 0 || len(m.A) != len(m.S) {
		return fmt.Errorf("model has %d rates and %d durations: %w", len(m.A), len(m.S), ErrDomain)
	}
	for i, a := range m.A {
		if !(a > 0) {
			return fmt.Errorf("piece %d has rate %g: %w", i, a, ErrNonMonotone)
		}
	}
	for i, s := range m.S {
		if !(s > 0) {
			return fmt.Errorf("piece %d has duration %g: %w", i, s, ErrDomain)
		}
	}
	return nil
}

// Rater exposes the cumulative coalescent rate R(t) of a fitted model:
// strictly increasing with R(0)=0, so that exp(-R(t)) is the probability
// that no coalescence has occurred by t.
type Rater interface {
	R(t float64) float64
}

// RateFunction evaluates the cumulative rate of a PiecewiseModel in
// closed form. It is a short-lived value constructed per calibration
// call; no state is shared between calls.
type RateFunction struct {
	t []float64 // knot times, t[0] = 0
	a []float64 // rate on [t[i], t[i+1]), last piece open-ended
	r []float64 // cumulative rate at t[i]
}

// NewRateFunction builds the cumulative rate function of a model,
// optionally refined at extra knot times. The model is validated for
// strict monotonicity up front.
func NewRateFunction(m *PiecewiseModel, extraKnots []float64) (*RateFunction, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	t := m.Knots()
	a := append([]float64(nil), m.A...)
	for _, k := range extraKnots {
		t, a = insertKnot(t, a, k)
	}
	r := make([]float64, len(t))
	for i := 1; i < len(t); i++ {
		r[i] = r[i-1] + a[i-1]*(t[i]-t[i-1])
	}
	return &RateFunction{t: t, a: a, r: r}, nil
}

// insertKnot splits the piece containing k without changing the function.
func insertKnot(t, a []float64, k float64) ([]float64, []float64) {
	if !(k > 0) || math.IsInf(k, 1) {
		return t, a
	}
	i := sort.SearchFloat64s(t, k)
	if i < len(t) && t[i] == k {
		return t, a
	}
	t = append(t, 0)
	copy(t[i+1:], t[i:])
	t[i] = k
	a = append(a, 0)
	copy(a[i+1:], a[i:])
	a[i] = a[i-1]
	return t, a
}

// R returns the cumulative coalescent rate at time t.
func (rf *RateFunction) R(t float64) float64 {
	if t <= 0 {
		return 0
	}
	i := sort.SearchFloat64s(rf.t, t) - 1
	if i < 0 {
		i = 0
	}
	if i >= len(rf.a) {
		i = len(rf.a) - 1
	}
	return rf.r[i] + rf.a[i]*(t-rf.t[i])
}
