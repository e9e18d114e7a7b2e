package smcprep

import (
	"errors"
	"math"
	"testing"
)

func TestModelFromCoalProbsMatchesRates(t *testing.T) {
	orig := &PiecewiseModel{
		A:   []float64{2, 1, 0.5, 1},
		S:   []float64{0.3, 0.5, 1.2, 1},
		N0:  1,
		PID: "pop1",
	}
	eta, err := NewRateFunction(orig, nil)
	if err != nil {
		t.Fatalf("NewRateFunction: %v", err)
	}

	times := []float64{0, 0.2, 0.5, 1.0, 2.0, math.Inf(1)}
	probs := make([]float64, len(times)-1)
	for i := range probs {
		next := 0.0
		if !math.IsInf(times[i+1], 1) {
			next = math.Exp(-eta.R(times[i+1]))
		}
		probs[i] = math.Exp(-eta.R(times[i])) - next
	}

	inv, err := ModelFromCoalProbs(times, probs, 1, "pop1")
	if err != nil {
		t.Fatalf("ModelFromCoalProbs: %v", err)
	}
	if n := len(inv.A); inv.A[n-1] != 1 || inv.S[n-1] != 1 {
		t.Fatalf("tail piece = rate %g duration %g, want 1, 1", inv.A[len(inv.A)-1], inv.S[len(inv.S)-1])
	}

	etaInv, err := NewRateFunction(inv, nil)
	if err != nil {
		t.Fatalf("NewRateFunction(inverted): %v", err)
	}
	for _, x := range times[1 : len(times)-1] {
		if a, b := eta.R(x), etaInv.R(x); math.Abs(a-b) > 1e-9 {
			t.Fatalf("cumulative rates differ at %g: %g != %g", x, a, b)
		}
	}
}

func TestModelFromCoalProbsRoundTrip(t *testing.T) {
	orig := &PiecewiseModel{
		A:   []float64{1.5, 0.7, 1.1},
		S:   []float64{0.4, 0.8, 1},
		N0:  1,
		PID: "pop1",
	}
	eta, err := NewRateFunction(orig, nil)
	if err != nil {
		t.Fatalf("NewRateFunction: %v", err)
	}
	const M = 8
	bp, err := EqualMassBreakpoints(eta, M)
	if err != nil {
		t.Fatalf("EqualMassBreakpoints: %v", err)
	}

	probs := make([]float64, M)
	for i := range probs {
		probs[i] = 1.0 / M
	}
	inv, err := ModelFromCoalProbs(bp, probs, orig.N0, orig.PID)
	if err != nil {
		t.Fatalf("ModelFromCoalProbs: %v", err)
	}

	etaInv, err := NewRateFunction(inv, nil)
	if err != nil {
		t.Fatalf("NewRateFunction(inverted): %v", err)
	}
	rebalanced, err := EqualMassBreakpoints(etaInv, M)
	if err != nil {
		t.Fatalf("EqualMassBreakpoints(inverted): %v", err)
	}
	for i := 1; i < M; i++ {
		if math.Abs(rebalanced[i]-bp[i]) > 1e-6*(1+bp[i]) {
			t.Fatalf("breakpoint %d not reproduced: %g != %g", i, rebalanced[i], bp[i])
		}
	}
}

func TestModelFromCoalProbsInfeasible(t *testing.T) {
	times := []float64{0, 0.5, 1, math.Inf(1)}
	// Second interval demands more mass than remains after the first.
	if _, err := ModelFromCoalProbs(times, []float64{0.9, 0.2, 0.1}, 1, "pop1"); !errors.Is(err, ErrDomain) {
		t.Fatalf("err = %v, want ErrDomain", err)
	}
	if _, err := ModelFromCoalProbs(times, []float64{0.5, 0}, 1, "pop1"); !errors.Is(err, ErrDomain) {
		t.Fatalf("length mismatch err = %v, want ErrDomain", err)
	}
}

func TestFirstCoalQuantile(t *testing.T) {
	// Constant rate 1: among n lineages the first coalescence time is
	// exponential with rate c = n(n-1)/2, so the q-quantile is
	// -log(1-q)/c.
	m := &PiecewiseModel{A: []float64{1, 1}, S: []float64{2, 2}, N0: 1, PID: "pop1"}
	const n, q = 4, 0.25
	got, err := FirstCoalQuantile(m, n, q)
	if err != nil {
		t.Fatalf("FirstCoalQuantile: %v", err)
	}
	c := float64(n*(n-1)) / 2
	want := -math.Log(1-q) / c
	if math.Abs(got-want) > 1e-8 {
		t.Fatalf("quantile = %.12g, want %.12g", got, want)
	}
}

func TestFirstCoalQuantileDomain(t *testing.T) {
	m := &PiecewiseModel{A: []float64{1}, S: []float64{1}, N0: 1, PID: "pop1"}
	if _, err := FirstCoalQuantile(m, 1, 0.5); !errors.Is(err, ErrDomain) {
		t.Fatalf("n=1 err = %v, want ErrDomain", err)
	}
	if _, err := FirstCoalQuantile(m, 4, 1.5); !errors.Is(err, ErrDomain) {
		t.Fatalf("q=1.5 err = %v, want ErrDomain", err)
	}
}
