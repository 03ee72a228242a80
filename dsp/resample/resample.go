package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/nimbuslink/modemdsp/dsp/buffer"
	"github.com/nimbuslink/modemdsp/dsp/rational"
)

var (
	// ErrInvalidRate indicates a non-positive or non-finite sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
	// ErrInvalidRatio indicates rates in the wrong order for the variant.
	ErrInvalidRatio = errors.New("resample: invalid rate ratio")
	// ErrOutOfRange indicates an output index outside [MinN, MaxN].
	ErrOutOfRange = errors.New("resample: output index out of range")
)

const (
	defaultWindowWidth = 30.0
	defaultKaiserBeta  = 8.6
	defaultMaxDen      = 4096
)

type config struct {
	windowWidth float64
	kaiserBeta  float64
	maxDen      int64
}

// Option configures a resampler.
type Option func(*config)

// WithWindowWidth overrides the interpolation window half-width W.
// Larger is slower and more accurate.
func WithWindowWidth(w float64) Option {
	return func(cfg *config) {
		if w > 0 {
			cfg.windowWidth = w
		}
	}
}

// WithKaiserBeta overrides the Kaiser taper beta parameter.
func WithKaiserBeta(beta float64) Option {
	return func(cfg *config) {
		if beta >= 0 {
			cfg.kaiserBeta = beta
		}
	}
}

// WithMaxDenominator caps the denominator of the rational approximation of
// the rate ratio.
func WithMaxDenominator(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxDen = int64(n)
		}
	}
}

func defaultedConfig(opts []Option) config {
	cfg := config{
		windowWidth: defaultWindowWidth,
		kaiserBeta:  defaultKaiserBeta,
		maxDen:      defaultMaxDen,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func validRate(r float64) bool {
	return r > 0 && !math.IsNaN(r) && !math.IsInf(r, 0)
}

// state holds what the two resampler variants share: the rational rate
// ratio, the sample store and the precomputed kernel.
type state struct {
	w     float64
	r     rational.Rational
	gamma float64
	buf   *buffer.Ring[complex128]
	k     kernel
}

// Push appends one input sample.
func (s *state) Push(x complex128) {
	s.buf.Push(x)
}

// Pushed returns the total number of input samples ever pushed.
func (s *state) Pushed() uint64 {
	return s.buf.Pushed()
}

// WindowWidth returns the configured window half-width W.
func (s *state) WindowWidth() float64 {
	return s.w
}

// Ratio returns the exactly-reduced rational approximation of the rate ratio.
func (s *state) Ratio() rational.Rational {
	return s.r
}

// Gamma returns the real-valued scale mapping input-time to output-time
// indices.
func (s *state) Gamma() float64 {
	return s.gamma
}

// Size returns the input buffer capacity in samples.
func (s *state) Size() int64 {
	return s.buf.Size()
}

// Support returns the inclusive kernel table index bounds.
func (s *state) Support() (gmin, gmax int64) {
	return s.k.gmin, s.k.gmax
}

func (s *state) rangeError(n, minn, maxn int64) error {
	return fmt.Errorf("%w: %d outside [%d, %d]", ErrOutOfRange, n, minn, maxn)
}
