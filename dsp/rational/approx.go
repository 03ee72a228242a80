package rational

import "math"

// Beyond this many terms a float64 input is exhausted anyway.
const maxTerms = 64

// Overflow guard threshold for the convergent recurrence.
const recurrenceLimit = float64(math.MaxInt64) / 2

// eachConvergent visits the successive continued-fraction convergents of x,
// starting with floor(x)/1, until visit returns false, the expansion
// terminates, or the recurrence would overflow int64.
func eachConvergent(x float64, visit func(Rational) bool) {
	// Seed convergents h(-2)/k(-2) = 0/1 and h(-1)/k(-1) = 1/0.
	h0, k0 := int64(0), int64(1)
	h1, k1 := int64(1), int64(0)

	rem := x
	for i := 0; i < maxTerms; i++ {
		a := math.Floor(rem)

		if math.Abs(a) >= recurrenceLimit ||
			math.Abs(a*float64(h1)+float64(h0)) >= recurrenceLimit ||
			math.Abs(a*float64(k1)+float64(k0)) >= recurrenceLimit {
			return
		}

		ai := int64(a)
		h0, h1 = h1, ai*h1+h0
		k0, k1 = k1, ai*k1+k0

		if !visit(Rational{P: h1, Q: k1}) {
			return
		}

		f := rem - a
		if f == 0 {
			return
		}

		rem = 1 / f
	}
}

// ContinuedFraction returns the first n terms of the continued-fraction
// expansion of x and the absolute error of the convergent those terms
// produce. Fewer terms are returned if the expansion terminates early.
func ContinuedFraction(x float64, n int) ([]int64, float64) {
	if n <= 0 {
		return nil, math.Abs(x)
	}

	terms := make([]int64, 0, n)

	h0, k0 := int64(0), int64(1)
	h1, k1 := int64(1), int64(0)

	rem := x
	for len(terms) < n {
		a := math.Floor(rem)

		if math.Abs(a) >= recurrenceLimit ||
			math.Abs(a*float64(h1)+float64(h0)) >= recurrenceLimit ||
			math.Abs(a*float64(k1)+float64(k0)) >= recurrenceLimit {
			break
		}

		ai := int64(a)
		h0, h1 = h1, ai*h1+h0
		k0, k1 = k1, ai*k1+k0
		terms = append(terms, ai)

		f := rem - a
		if f == 0 {
			break
		}

		rem = 1 / f
	}

	if k1 == 0 {
		return terms, math.Abs(x)
	}

	return terms, math.Abs(x-float64(h1)/float64(k1))
}

// Convergents returns the first n best rational approximations to x, i.e.
// its successive continued-fraction convergents. Fewer are returned when the
// expansion terminates early (x exactly rational in float64).
func Convergents(x float64, n int) []Rational {
	if n <= 0 {
		return nil
	}

	out := make([]Rational, 0, n)
	eachConvergent(x, func(r Rational) bool {
		out = append(out, r)
		return len(out) < n
	})

	return out
}

// Approximate returns a fraction p/q approximating x, subject to the first of
// these accuracy targets to bind:
//
//   - |x - p/q| < tol (skipped when tol <= 0),
//   - q <= qmax, never exceeded, with p/q the most accurate such fraction
//     (skipped when qmax <= 0),
//   - the kth convergent, counting floor(x)/1 as k = 1 (skipped when k <= 0).
//
// With no target enabled the most accurate representable convergent is
// returned. The call always succeeds: the result is best-effort and the
// residual error is the documented cost of approximating irrational ratios.
func Approximate(x float64, tol float64, qmax int64, k int) Rational {
	h0, k0 := int64(0), int64(1)
	h1, k1 := int64(1), int64(0)

	var best Rational

	rank := 0
	rem := x

	for i := 0; i < maxTerms; i++ {
		a := math.Floor(rem)

		if math.Abs(a) >= recurrenceLimit ||
			math.Abs(a*float64(h1)+float64(h0)) >= recurrenceLimit ||
			math.Abs(a*float64(k1)+float64(k0)) >= recurrenceLimit {
			break
		}

		ai := int64(a)
		h2, k2 := ai*h1+h0, ai*k1+k0

		if qmax > 0 && k2 > qmax {
			// The best fraction within the denominator budget is either the
			// last convergent or the largest semiconvergent that still fits.
			if j := (qmax - k0) / k1; j >= 1 {
				semi := Rational{P: j*h1 + h0, Q: j*k1 + k0}
				if math.Abs(x-semi.Float()) < math.Abs(x-best.Float()) {
					best = semi
				}
			}

			break
		}

		h0, h1 = h1, h2
		k0, k1 = k1, k2
		best = Rational{P: h1, Q: k1}
		rank++

		if tol > 0 && math.Abs(x-best.Float()) < tol {
			break
		}

		if k > 0 && rank >= k {
			break
		}

		f := rem - a
		if f == 0 {
			break
		}

		rem = 1 / f
	}

	if best.Q == 0 {
		// Recurrence overflowed before the first convergent; fall back to
		// the nearest integer.
		return Rational{P: int64(math.Round(x)), Q: 1}
	}

	return best
}
