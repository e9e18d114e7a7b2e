package smcprep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// maxBracketGrowth caps the exponential bracket expansion when hunting
// for a breakpoint. 2*(b+1) applied this many times overflows any
// plausible coalescent time scale, so hitting the cap means the rate
// function cannot reach the target mass.
const maxBracketGrowth = 64

// EqualMassBreakpoints returns [0, b_1, ..., b_{M-1}, +Inf] such that
// each of the M intervals carries coalescence probability 1/M under eta:
// exp(-R(b_m)) = (M-m)/M. Breakpoints are strictly increasing because R
// is strictly increasing and the targets strictly decrease.
func EqualMassBreakpoints(eta Rater, M int) ([]float64, error) {
	if M < 2 {
		return nil, fmt.Errorf("hidden states: M=%d: %w", M, ErrDomain)
	}
	ret := make([]float64, 1, M+1)
	for m := 1; m < M; m++ {
		target := float64(M-m) / float64(M)
		f := func(t float64) float64 {
			return math.Exp(-eta.R(t)) - target
		}
		a := ret[len(ret)-1]
		b := a
		for grown := 0; f(a)*f(b) >= 0; grown++ {
			if grown >= maxBracketGrowth {
				return nil, fmt.Errorf("hidden states: cannot bracket breakpoint %d of %d: %w", m, M, ErrNonMonotone)
			}
			b = 2 * (b + 1)
		}
		res, err := brentq(f, a, b)
		if err != nil {
			return nil, fmt.Errorf("hidden states: breakpoint %d of %d: %w", m, M, err)
		}
		ret = append(ret, res)
	}
	return append(ret, math.Inf(1)), nil
}

// BalanceHiddenStates discretizes coalescent time into M hidden states of
// equal coalescence probability under the model. The returned M+1
// breakpoints are in generations (model time scaled by 2*N0).
func BalanceHiddenStates(m *PiecewiseModel, M int) ([]float64, error) {
	eta, err := NewRateFunction(m, nil)
	if err != nil {
		return nil, err
	}
	bp, err := EqualMassBreakpoints(eta, M)
	if err != nil {
		return nil, err
	}
	floats.Scale(2*m.N0, bp)
	return bp, nil
}
