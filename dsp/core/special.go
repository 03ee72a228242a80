package core

import "math"

// Sinc returns the normalized sinc function sin(pi*x)/(pi*x).
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// BesselI0 returns a numerical approximation of the modified Bessel function I0.
func BesselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}

// BesselI returns the nth modified Bessel function of the first kind at x,
// evaluated by power series. Converges for the moderate n and x used in
// window design.
func BesselI(n int, x float64) float64 {
	if n < 0 {
		n = -n
	}

	if n == 0 {
		return BesselI0(x)
	}

	half := x / 2

	// First term (x/2)^n / n!
	term := 1.0
	for k := 1; k <= n; k++ {
		term *= half / float64(k)
	}

	sum := term
	x2 := half * half

	for k := 1; k < 64; k++ {
		term *= x2 / (float64(k) * float64(k+n))

		sum += term
		if term < 1e-16*sum {
			break
		}
	}

	return sum
}

// Factorial returns n! for n <= 20; larger arguments overflow uint64.
func Factorial(n uint) uint64 {
	f := uint64(1)
	for k := uint64(2); k <= uint64(n); k++ {
		f *= k
	}

	return f
}
