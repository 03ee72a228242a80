package buffer

import (
	"errors"
	"fmt"

	"github.com/nimbuslink/modemdsp/dsp/core"
)

// ErrOutOfRange indicates an index outside the currently resident window.
var ErrOutOfRange = errors.New("buffer: index out of range")

// Ring is a fixed-capacity circular buffer supporting monotonic append and
// random access by absolute index.
//
// Every pushed element gets the next absolute index 0, 1, 2, ...; the buffer
// retains the most recent Size() of them. Indices in [MinN(), MaxN()] are
// resident. Before the first Size() pushes the window extends to negative
// indices whose slots still hold the fill value.
//
// A Ring is not safe for concurrent use; callers must serialize access.
type Ring[T any] struct {
	size int64
	mask uint64
	buf  []T
	n    uint64
}

// NewRing returns a ring whose capacity is the smallest power of two greater
// than or equal to the requested capacity, with every slot initialised to
// fill. Capacities below one are treated as one.
func NewRing[T any](capacity int, fill T) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}

	size := core.NextPow2Uint64(uint64(capacity))

	buf := make([]T, size)
	for i := range buf {
		buf[i] = fill
	}

	return &Ring[T]{
		size: int64(size),
		mask: size - 1,
		buf:  buf,
	}
}

// Size returns the fixed capacity. It never changes after construction.
func (r *Ring[T]) Size() int64 {
	return r.size
}

// Push appends one element, overwriting the slot falling out of the window.
func (r *Ring[T]) Push(v T) {
	r.buf[r.n&r.mask] = v
	r.n++
}

// Pushed returns the total number of elements ever pushed.
func (r *Ring[T]) Pushed() uint64 {
	return r.n
}

// MaxN returns the largest resident absolute index, Pushed() - 1.
func (r *Ring[T]) MaxN() int64 {
	return int64(r.n) - 1
}

// MinN returns the smallest resident absolute index, Pushed() - Size().
func (r *Ring[T]) MinN() int64 {
	return int64(r.n) - r.size
}

// Get reads the element at absolute index n without bounds checking. The
// caller must guarantee n is resident; a stale index silently aliases a
// newer element.
func (r *Ring[T]) Get(n int64) T {
	return r.buf[uint64(n)&r.mask]
}

// At reads the element at absolute index n, failing with ErrOutOfRange if n
// has been overwritten or not pushed yet.
func (r *Ring[T]) At(n int64) (T, error) {
	if n < r.MinN() || n > r.MaxN() {
		var zero T
		return zero, r.rangeError(n)
	}

	return r.Get(n), nil
}

// Set overwrites the element at resident absolute index n.
func (r *Ring[T]) Set(n int64, v T) error {
	if n < r.MinN() || n > r.MaxN() {
		return r.rangeError(n)
	}

	r.buf[uint64(n)&r.mask] = v

	return nil
}

func (r *Ring[T]) rangeError(n int64) error {
	return fmt.Errorf("%w: %d outside [%d, %d]", ErrOutOfRange, n, r.MinN(), r.MaxN())
}
