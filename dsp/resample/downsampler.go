package resample

import (
	"math"

	"github.com/nimbuslink/modemdsp/dsp/buffer"
	"github.com/nimbuslink/modemdsp/dsp/rational"
)

// Downsampler converts a complex baseband stream from a higher sample rate
// to a lower one. The interpolation kernel doubles as an anti-aliasing
// filter: its cutoff tracks the output Nyquist rate, so spectral content
// above it is attenuated rather than folded back into the output band.
type Downsampler struct {
	state
}

// NewDownsampler creates a downsampler from inRate to outRate. The rate
// ratio inRate/outRate is approximated by a reduced fraction whose
// denominator is capped by WithMaxDenominator.
func NewDownsampler(inRate, outRate float64, opts ...Option) (*Downsampler, error) {
	if !validRate(inRate) || !validRate(outRate) {
		return nil, ErrInvalidRate
	}

	if inRate <= outRate {
		return nil, ErrInvalidRatio
	}

	cfg := defaultedConfig(opts)

	r := rational.Approximate(inRate/outRate, 0, cfg.maxDen, 0)

	gamma := float64(r.Q) / float64(r.P)

	// The window spans W output samples, which is W/gamma input samples,
	// so the buffer must hold proportionally more history than the
	// upsampler's.
	capacity := int(4 * cfg.windowWidth / gamma)
	if capacity < 8 {
		capacity = 8
	}

	d := &Downsampler{state{
		w:     cfg.windowWidth,
		r:     r,
		gamma: gamma,
		buf:   buffer.NewRing[complex128](capacity, 0),
	}}
	d.k = newKernel(r.P, cfg.windowWidth, gamma, cfg.kaiserBeta)

	return d, nil
}

// MinN returns the smallest output index still backed by buffered input.
func (d *Downsampler) MinN() int64 {
	b := float64(d.buf.MaxN()) - float64(d.buf.Size())

	return int64(math.Ceil(d.gamma*b + d.w))
}

// MaxN returns the largest output index whose interpolation window is fully
// covered by pushed input.
func (d *Downsampler) MaxN() int64 {
	b := float64(d.buf.MaxN()) - 1

	return int64(math.Floor(d.gamma*b - d.w))
}

// At computes the output sample at absolute output index n. It returns a
// wrapped ErrOutOfRange when n lies outside [MinN, MaxN].
func (d *Downsampler) At(n int64) (complex128, error) {
	minn, maxn := d.MinN(), d.MaxN()
	if n < minn || n > maxn {
		return 0, d.rangeError(n, minn, maxn)
	}

	// The window half-width is W output samples, W/gamma input samples.
	t := float64(n) / d.gamma
	c := d.w / d.gamma

	var acc complex128

	for m := int64(math.Ceil(t - c)); m <= int64(math.Floor(t+c)); m++ {
		j := n*d.r.P - m*d.r.Q
		acc += d.buf.Get(m) * complex(d.k.at(j), 0)
	}

	return acc, nil
}
