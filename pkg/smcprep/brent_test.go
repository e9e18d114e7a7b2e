package smcprep

import (
	"errors"
	"math"
	"testing"
)

func TestBrentq(t *testing.T) {
	root, err := brentq(func(x float64) float64 { return x*x - 2 }, 0, 2)
	if err != nil {
		t.Fatalf("brentq: %v", err)
	}
	if math.Abs(root-math.Sqrt2) > 1e-10 {
		t.Fatalf("root = %.15g, want sqrt(2)", root)
	}

	root, err = brentq(func(x float64) float64 { return math.Exp(-x) - 0.5 }, 0, 10)
	if err != nil {
		t.Fatalf("brentq: %v", err)
	}
	if math.Abs(root-math.Ln2) > 1e-10 {
		t.Fatalf("root = %.15g, want ln(2)", root)
	}
}

func TestBrentqEndpointRoot(t *testing.T) {
	root, err := brentq(func(x float64) float64 { return x }, 0, 1)
	if err != nil || root != 0 {
		t.Fatalf("brentq = %g, %v", root, err)
	}
}

func TestBrentqNotBracketed(t *testing.T) {
	if _, err := brentq(func(x float64) float64 { return x*x + 1 }, -1, 1); !errors.Is(err, ErrDomain) {
		t.Fatalf("err = %v, want ErrDomain", err)
	}
}
