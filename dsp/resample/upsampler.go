package resample

import (
	"math"

	"github.com/nimbuslink/modemdsp/dsp/buffer"
	"github.com/nimbuslink/modemdsp/dsp/rational"
)

// Upsampler converts a complex baseband stream from a lower sample rate to
// a higher one by windowed-sinc interpolation. Input samples enter through
// Push; output samples are read by absolute output index through At.
type Upsampler struct {
	state
}

// NewUpsampler creates an upsampler from inRate to outRate. The rate ratio
// outRate/inRate is approximated by a reduced fraction whose denominator is
// capped by WithMaxDenominator.
func NewUpsampler(inRate, outRate float64, opts ...Option) (*Upsampler, error) {
	if !validRate(inRate) || !validRate(outRate) {
		return nil, ErrInvalidRate
	}

	if outRate < inRate {
		return nil, ErrInvalidRatio
	}

	cfg := defaultedConfig(opts)

	r := rational.Approximate(outRate/inRate, 0, cfg.maxDen, 0)

	capacity := int(4 * cfg.windowWidth)
	if capacity < 8 {
		capacity = 8
	}

	u := &Upsampler{state{
		w:     cfg.windowWidth,
		r:     r,
		gamma: r.Float(),
		buf:   buffer.NewRing[complex128](capacity, 0),
	}}
	u.k = newKernel(r.P, cfg.windowWidth, 1, cfg.kaiserBeta)

	return u, nil
}

// MinN returns the smallest output index still backed by buffered input.
func (u *Upsampler) MinN() int64 {
	b := float64(u.buf.MaxN()) - float64(u.buf.Size()) + u.w

	return int64(math.Ceil(u.gamma * b))
}

// MaxN returns the largest output index whose interpolation window is fully
// covered by pushed input.
func (u *Upsampler) MaxN() int64 {
	b := float64(u.buf.MaxN()) - 1 - u.w

	return int64(math.Floor(u.gamma * b))
}

// At computes the output sample at absolute output index n. It returns a
// wrapped ErrOutOfRange when n lies outside [MinN, MaxN].
func (u *Upsampler) At(n int64) (complex128, error) {
	minn, maxn := u.MinN(), u.MaxN()
	if n < minn || n > maxn {
		return 0, u.rangeError(n, minn, maxn)
	}

	// Output index n sits at input time t. All input samples within the
	// window half-width contribute, each weighted by a precomputed tap:
	// the offset t-m is always a multiple of 1/P.
	t := float64(n) / u.gamma

	var acc complex128

	for m := int64(math.Ceil(t - u.w)); m <= int64(math.Floor(t+u.w)); m++ {
		j := n*u.r.Q - m*u.r.P
		acc += u.buf.Get(m) * complex(u.k.at(j), 0)
	}

	return acc, nil
}
