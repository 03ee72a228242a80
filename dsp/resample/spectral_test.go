package resample

import (
	"math"
	"math/cmplx"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// peakBin returns the index and magnitude of the strongest FFT bin.
func peakBin(spectrum []complex128) (int, float64) {
	best, bestMag := 0, 0.0

	for i, x := range spectrum {
		if mag := cmplx.Abs(x); mag > bestMag {
			best, bestMag = i, mag
		}
	}

	return best, bestMag
}

// Resampling a pure tone must move its spectral peak to the rescaled bin and
// leave everything else near the noise floor of the interpolation kernel.
func TestUpsamplerSpectrum(t *testing.T) {
	// cycles/gamma*fftSize = 96 exactly, so the output tone sits on an FFT
	// bin and leaks nothing into its neighbours.
	const (
		fftSize = 1024
		cycles  = 0.140625
	)

	u, err := NewUpsampler(2, 3)
	if err != nil {
		t.Fatalf("NewUpsampler: %v", err)
	}

	out := make([]complex128, 0, fftSize)
	next := int64(math.MinInt64)

	for m := 0; len(out) < fftSize; m++ {
		phase := 2 * math.Pi * cycles * float64(m)
		u.Push(complex(math.Cos(phase), math.Sin(phase)))

		if next == math.MinInt64 {
			// Skip the zero-fill transient at the head of the stream.
			next = int64(math.Ceil(u.Gamma() * u.WindowWidth()))
		}

		for ; next <= u.MaxN() && len(out) < fftSize; next++ {
			y, err := u.At(next)
			if err != nil {
				t.Fatalf("At(%d): %v", next, err)
			}

			out = append(out, y)
		}
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, out); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	peak, peakMag := peakBin(spectrum)

	// 0.15 cycles per input sample is 0.1 per output sample.
	wantBin := int(math.Round(cycles / u.Gamma() * fftSize))
	if delta := peak - wantBin; delta < -1 || delta > 1 {
		t.Fatalf("peak at bin %d, want %d", peak, wantBin)
	}

	for i, x := range spectrum {
		if i >= peak-3 && i <= peak+3 {
			continue
		}

		if mag := cmplx.Abs(x); mag > peakMag*1e-2 {
			t.Fatalf("bin %d magnitude %v exceeds 1%% of peak %v", i, mag, peakMag)
		}
	}
}

// Two tones straddle the output Nyquist rate of a 4:1 decimator; only the
// in-band tone may survive in the output spectrum.
func TestDownsamplerSpectrum(t *testing.T) {
	// inBand/gamma*fftSize = 64 exactly; outOfBand maps to 0.8 cycles per
	// output sample, above the output Nyquist of 0.5.
	const (
		fftSize   = 512
		inBand    = 0.03125
		outOfBand = 0.2
	)

	d, err := NewDownsampler(4, 1)
	if err != nil {
		t.Fatalf("NewDownsampler: %v", err)
	}

	out := make([]complex128, 0, fftSize)
	next := int64(math.MinInt64)

	for m := 0; len(out) < fftSize; m++ {
		p1 := 2 * math.Pi * inBand * float64(m)
		p2 := 2 * math.Pi * outOfBand * float64(m)
		d.Push(complex(math.Cos(p1), math.Sin(p1)) + complex(math.Cos(p2), math.Sin(p2)))

		if next == math.MinInt64 {
			next = int64(math.Ceil(d.WindowWidth()))
		}

		for ; next <= d.MaxN() && len(out) < fftSize; next++ {
			y, err := d.At(next)
			if err != nil {
				t.Fatalf("At(%d): %v", next, err)
			}

			out = append(out, y)
		}
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, out); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	peak, peakMag := peakBin(spectrum)

	wantBin := int(math.Round(inBand / d.Gamma() * fftSize))
	if delta := peak - wantBin; delta < -1 || delta > 1 {
		t.Fatalf("peak at bin %d, want %d", peak, wantBin)
	}

	aliasBin := int(math.Round((outOfBand/d.Gamma() - math.Floor(outOfBand/d.Gamma())) * fftSize))
	if mag := cmplx.Abs(spectrum[aliasBin]); mag > peakMag*1e-3 {
		t.Fatalf("alias bin %d magnitude %v, want below 0.1%% of peak %v", aliasBin, mag, peakMag)
	}
}
