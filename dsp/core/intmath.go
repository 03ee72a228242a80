package core

import "math/bits"

// Signed integer types supported by Mod and DivCeil.
type Integer interface {
	~int | ~int32 | ~int64
}

// Mod returns x modulo y, i.e. the coset representative of x from
// {0, 1, ..., y-1}.
//
// Different from x % y when x is negative: the builtin remainder keeps the
// sign of x.
func Mod[T Integer](x, y T) T {
	t := x % y
	if t < 0 {
		return t + y
	}

	return t
}

// DivCeil returns the ceiling of a/b for nonnegative a and positive b.
func DivCeil[T Integer](a, b T) T {
	q := a / b
	if a%b != 0 {
		q++
	}

	return q
}

// NextPow2 returns the smallest power of two greater than or equal to x.
// NextPow2(0) is 1.
func NextPow2(x uint) uint {
	if x <= 1 {
		return 1
	}

	return 1 << bits.Len(x-1)
}

// NextPow2Uint64 is NextPow2 for 64-bit values.
func NextPow2Uint64(x uint64) uint64 {
	if x <= 1 {
		return 1
	}

	return 1 << bits.Len64(x-1)
}

// IsPow2 reports whether x is a power of two.
func IsPow2(x uint) bool {
	return x != 0 && x&(x-1) == 0
}

// IsPow2Uint64 reports whether x is a power of two.
func IsPow2Uint64(x uint64) bool {
	return x != 0 && x&(x-1) == 0
}

// IsStrictlyAscending reports whether a is in strictly ascending order.
func IsStrictlyAscending[T Integer](a []T) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] >= a[i] {
			return false
		}
	}

	return true
}

// ArgMin returns the index of the smallest element of a, or -1 if a is empty.
// Ties resolve to the first occurrence.
func ArgMin[T Integer](a []T) int {
	if len(a) == 0 {
		return -1
	}

	idx := 0
	for i, v := range a {
		if v < a[idx] {
			idx = i
		}
	}

	return idx
}

// ArgMax returns the index of the largest element of a, or -1 if a is empty.
// Ties resolve to the first occurrence.
func ArgMax[T Integer](a []T) int {
	if len(a) == 0 {
		return -1
	}

	idx := 0
	for i, v := range a {
		if v > a[idx] {
			idx = i
		}
	}

	return idx
}
