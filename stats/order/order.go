// Package order provides selection statistics over numeric slices:
// order-statistic selection and medians.
package order

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrEmptyInput indicates an empty input slice.
var ErrEmptyInput = errors.New("order: empty input")

// Number constrains the element types selection works on.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Select returns the kth largest element, with k = 0 the maximum. It
// partially reorders data in place. Expected linear time.
func Select[T Number](data []T, k int) (T, error) {
	var zero T

	if len(data) == 0 {
		return zero, ErrEmptyInput
	}

	if k < 0 || k >= len(data) {
		return zero, fmt.Errorf("order: rank %d out of range [0, %d)", k, len(data))
	}

	// The kth largest is the (n-1-k)th in ascending order.
	return quickselect(data, len(data)-1-k), nil
}

// Median returns the median. For an even number of elements it averages the
// two middle values, truncating for integer types. It partially reorders
// data in place.
func Median[T Number](data []T) (T, error) {
	var zero T

	n := len(data)
	if n == 0 {
		return zero, ErrEmptyInput
	}

	mid := quickselect(data, n/2)
	if n%2 == 1 {
		return mid, nil
	}

	// quickselect leaves data[:n/2] holding only elements <= mid, so the
	// lower middle is their maximum.
	lower := data[0]
	for _, v := range data[1 : n/2] {
		if v > lower {
			lower = v
		}
	}

	return (lower + mid) / 2, nil
}

// quickselect returns the element with ascending rank k, reordering data so
// that data[k] holds it on return.
func quickselect[T Number](data []T, k int) T {
	lo, hi := 0, len(data)-1

	for lo < hi {
		p := partition(data, lo, hi)

		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return data[k]
		}
	}

	return data[k]
}

// partition places a randomly chosen pivot into its final ascending
// position within data[lo:hi+1] and returns that position. Random pivots
// keep adversarial inputs at expected linear cost.
func partition[T Number](data []T, lo, hi int) int {
	p := lo + rand.Intn(hi-lo+1)
	data[p], data[hi] = data[hi], data[p]

	pivot := data[hi]
	i := lo

	for j := lo; j < hi; j++ {
		if data[j] < pivot {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}

	data[i], data[hi] = data[hi], data[i]

	return i
}
