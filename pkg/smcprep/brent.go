package smcprep

import (
	"fmt"
	"math"
)

const (
	brentMaxIter = 100
	brentXTol    = 2e-12
)

var machEps = math.Nextafter(1, 2) - 1

// brentq finds a root of f in [x1, x2], where f(x1) and f(x2) must have
// opposite signs. Brent's method: inverse quadratic interpolation with a
// secant fallback, bisection when interpolation would leave the bracket.
// Unlike the textbook loop the iteration count is capped; exhausting it
// returns ErrNoConverge instead of spinning.
func brentq(f func(float64) float64, x1, x2 float64) (float64, error) {
	a, b := x1, x2
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, fmt.Errorf("root not bracketed in [%g, %g]: %w", x1, x2, ErrDomain)
	}
	c, fc := b, fb
	var d, e float64
	for iter := 0; iter < brentMaxIter; iter++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*machEps*math.Abs(b) + 0.5*brentXTol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt inverse quadratic interpolation.
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}
	return b, fmt.Errorf("no root in %d iterations: %w", brentMaxIter, ErrNoConverge)
}
