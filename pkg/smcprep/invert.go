package smcprep

import (
	"fmt"
	"math"
)

// ModelFromCoalProbs constructs a piecewise-constant model whose
// coalescence probability in [t[i], t[i+1]) equals p[i]. The running
// cumulative rate advances by R' = R - log1p(-exp(R + log p)), the
// numerically stable form of -log(exp(-R) - p). The final piece is an
// open-ended tail fixed at rate 1, duration 1.
func ModelFromCoalProbs(t, p []float64, n0 float64, pid string) (*PiecewiseModel, error) {
	if len(t) != len(p)+1 {
		return nil, fmt.Errorf("%d times for %d probabilities: %w", len(t), len(p), ErrDomain)
	}
	rt := 0.0
	t0 := t[0]
	a := make([]float64, 0, len(p))
	s := make([]float64, 0, len(p))
	for i := 0; i < len(p)-1; i++ {
		arg := -math.Exp(rt + math.Log(p[i]))
		if !(arg > -1 && arg < 0) {
			return nil, fmt.Errorf("interval %d: probability %g infeasible given prior mass: %w", i, p[i], ErrDomain)
		}
		rt1 := rt - math.Log1p(arg)
		dur := t[i+1] - t0
		if !(dur > 0) {
			return nil, fmt.Errorf("interval %d: non-increasing times %g, %g: %w", i, t0, t[i+1], ErrDomain)
		}
		s = append(s, dur)
		a = append(a, (rt1-rt)/dur)
		rt = rt1
		t0 = t[i+1]
	}
	s = append(s, 1)
	a = append(a, 1)
	return &PiecewiseModel{A: a, S: s, N0: n0, PID: pid}, nil
}

// FirstCoalQuantile returns the time by which the first coalescence among
// n lineages has occurred with probability q under the model. Used to
// pick the left endpoint of the time discretization.
func FirstCoalQuantile(m *PiecewiseModel, n int, q float64) (float64, error) {
	if n < 2 {
		return 0, fmt.Errorf("n=%d lineages: %w", n, ErrDomain)
	}
	if !(q > 0 && q < 1) {
		return 0, fmt.Errorf("quantile %g outside (0,1): %w", q, ErrDomain)
	}
	eta, err := NewRateFunction(m, []float64{0, math.Inf(1)})
	if err != nil {
		return 0, err
	}
	c := float64(n*(n-1)) / 2
	f := func(t float64) float64 {
		return math.Expm1(-c*eta.R(t)) + q
	}
	knots := m.Knots()
	return brentq(f, 0, knots[len(knots)-1])
}
