package core

import "math"

// Frac returns the fractional part of x, i.e. x - floor(x), always in [0, 1).
func Frac(x float64) float64 {
	return x - math.Floor(x)
}

// Fracpart returns the centered fractional part of x.
//
// This is x minus the nearest integer to x, equivalently the closest
// representative of x from [-0.5, 0.5).
func Fracpart(x float64) float64 {
	return x - math.Round(x)
}

// RoundScaled returns x rounded to the nearest multiple of s.
func RoundScaled(x, s float64) float64 {
	return s * math.Round(x/s)
}

// RoundScaledAffine returns x rounded to the nearest number of the form
// k*s + t where k is an integer.
func RoundScaledAffine(x, s, t float64) float64 {
	return RoundScaled(x-t, s) + t
}

// FracpartScaled returns x modulo s into the interval [-s/2, s/2).
func FracpartScaled(x, s float64) float64 {
	return x - RoundScaled(x, s)
}

// Signum returns the sign of x: 1, -1, or 0 if x is zero.
func Signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Sqr returns x*x.
func Sqr(x float64) float64 {
	return x * x
}

// Cub returns x*x*x.
func Cub(x float64) float64 {
	return x * x * x
}

// Modulus returns the floating point value of x mod y in [0, y).
func Modulus(x, y float64) float64 {
	return y * Frac(x/y)
}

// Mod2Pi maps x into the interval [0, 2*pi).
func Mod2Pi(x float64) float64 {
	return Modulus(x, 2*math.Pi)
}

// DegToRad converts degrees to radians.
func DegToRad(x float64) float64 {
	return x * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(x float64) float64 {
	return x * 180 / math.Pi
}

// Unwrap continues a phase-wrapped sequence past the [-pi, pi] boundary.
//
// Given the wrapped value and the previously unwrapped value it returns the
// representative of value closest to prev:
//
//	y[0] = core.Unwrap(x[0], 0)
//	for n := 1; n < len(x); n++ {
//		y[n] = core.Unwrap(x[n], y[n-1])
//	}
//
// Only reliable on reasonably clean phase signals sampled well above the
// Nyquist rate.
func Unwrap(value, prev float64) float64 {
	return prev + FracpartScaled(value-prev, 2*math.Pi)
}
