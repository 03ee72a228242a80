// Package rational provides exact rational arithmetic and best rational
// approximation of real values via continued fractions.
//
// A Rational is always stored in lowest terms with a positive denominator,
// so equal values have equal representations. Approximation quality is
// controlled by a tolerance, a denominator budget, or a convergent rank;
// precision loss for irrational inputs is inherent, never an error.
package rational

import "fmt"

// Rational is the reduced fraction P/Q with Q > 0.
type Rational struct {
	P int64 // numerator
	Q int64 // denominator
}

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 1 so that
// reduction never divides by zero.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}

	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	if a == 0 {
		return 1
	}

	return a
}

// New returns the reduced rational equivalent to a/b. The result carries the
// sign on the numerator. b must be nonzero.
func New(a, b int64) Rational {
	if b < 0 {
		a, b = -a, -b
	}

	g := GCD(a, b)

	return Rational{P: a / g, Q: b / g}
}

// Add returns the reduced sum r + s.
func (r Rational) Add(s Rational) Rational {
	return New(r.P*s.Q+s.P*r.Q, r.Q*s.Q)
}

// Compare returns 1 if r > s, -1 if r < s and 0 if they are equal.
func (r Rational) Compare(s Rational) int {
	lhs := r.P * s.Q
	rhs := s.P * r.Q

	switch {
	case lhs > rhs:
		return 1
	case lhs < rhs:
		return -1
	default:
		return 0
	}
}

// Float returns the value of r as a float64.
func (r Rational) Float() float64 {
	return float64(r.P) / float64(r.Q)
}

// String formats r as "p/q".
func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.P, r.Q)
}
