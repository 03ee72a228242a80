// Package rootfind locates zeros and minima of one-dimensional functions:
// bisection for bracketed roots and Brent's method for bracketed minima.
package rootfind

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoSignChange indicates the interval endpoints do not bracket a
	// root.
	ErrNoSignChange = errors.New("rootfind: interval endpoints have the same sign")
	// ErrInvalidBracket indicates a minimization bracket that does not
	// satisfy ax < bx < cx with f(bx) below both endpoint values.
	ErrInvalidBracket = errors.New("rootfind: invalid minimization bracket")
)

// Bisection finds a zero of f in [ax, bx] to within tol. It requires f
// continuous with opposite signs at the endpoints and converges in at most
// log2((bx-ax)/tol) iterations, capped at maxIter.
func Bisection(f func(float64) float64, ax, bx, tol float64, maxIter int) (float64, error) {
	if ax > bx {
		ax, bx = bx, ax
	}

	fa, fb := f(ax), f(bx)

	if fa == 0 {
		return ax, nil
	}

	if fb == 0 {
		return bx, nil
	}

	if math.Signbit(fa) == math.Signbit(fb) {
		return 0, fmt.Errorf("%w: f(%v) = %v, f(%v) = %v", ErrNoSignChange, ax, fa, bx, fb)
	}

	for i := 0; i < maxIter && bx-ax > tol; i++ {
		mid := ax + (bx-ax)/2

		fm := f(mid)
		if fm == 0 {
			return mid, nil
		}

		if math.Signbit(fm) == math.Signbit(fa) {
			ax, fa = mid, fm
		} else {
			bx = mid
		}
	}

	return ax + (bx-ax)/2, nil
}

// Solve finds x in [ax, bx] such that f(x) = y, by bisection on f(x) - y.
func Solve(f func(float64) float64, y, ax, bx, tol float64, maxIter int) (float64, error) {
	return Bisection(func(x float64) float64 { return f(x) - y }, ax, bx, tol, maxIter)
}

const (
	// Golden-section step ratio.
	cgold = 0.3819660112501051
	// Guards against division by zero in the parabolic step.
	tiny = 1e-20
)

// Minimize performs a one-dimensional minimization of f using Brent's
// method, combining golden-section search with parabolic interpolation.
// The bracket must satisfy ax < bx < cx and f(bx) < f(ax), f(bx) < f(cx).
// It returns the minimiser, the minimum value and the number of iterations
// performed.
func Minimize(f func(float64) float64, ax, bx, cx, tol float64, maxIter int) (x, fx float64, iters int, err error) {
	if !(ax < bx && bx < cx) {
		return 0, 0, 0, fmt.Errorf("%w: ax=%v bx=%v cx=%v", ErrInvalidBracket, ax, bx, cx)
	}

	fb := f(bx)
	if fb >= f(ax) || fb >= f(cx) {
		return 0, 0, 0, fmt.Errorf("%w: f(bx) must be below both endpoints", ErrInvalidBracket)
	}

	a, b := ax, cx
	x, fx = bx, fb
	w, v := x, x
	fw, fv := fx, fx

	var d, e float64

	for iters = 0; iters < maxIter; iters++ {
		xm := (a + b) / 2

		tol1 := tol*math.Abs(x) + tiny
		tol2 := 2 * tol1

		if math.Abs(x-xm) <= tol2-(b-a)/2 {
			return x, fx, iters, nil
		}

		useGolden := true

		if math.Abs(e) > tol1 {
			// Fit a parabola through x, w, v and try its vertex.
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)

			if q > 0 {
				p = -p
			}

			q = math.Abs(q)
			etmp := e
			e = d

			if math.Abs(p) < math.Abs(q*etmp/2) && p > q*(a-x) && p < q*(b-x) {
				d = p / q
				u := x + d

				if u-a < tol2 || b-u < tol2 {
					d = math.Copysign(tol1, xm-x)
				}

				useGolden = false
			}
		}

		if useGolden {
			if x >= xm {
				e = a - x
			} else {
				e = b - x
			}

			d = cgold * e
		}

		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else {
			u = x + math.Copysign(tol1, d)
		}

		fu := f(u)

		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}

			v, fv = w, fw
			w, fw = x, fx
			x, fx = u, fu

			continue
		}

		if u < x {
			a = u
		} else {
			b = u
		}

		switch {
		case fu <= fw || w == x:
			v, fv = w, fw
			w, fw = u, fu
		case fu <= fv || v == x || v == w:
			v, fv = u, fu
		}
	}

	return x, fx, iters, nil
}
