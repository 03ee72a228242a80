package resample

import (
	"math"

	"github.com/nimbuslink/modemdsp/dsp/core"
	"github.com/nimbuslink/modemdsp/dsp/window"
)

// kernel is a windowed-sinc interpolation filter tabulated at the
// 1/den-spaced offsets the rational rate ratio induces. Table index j
// corresponds to the continuous offset u = j/den, measured in samples of
// the faster of the two rates, so the same table shape serves both
// interpolation and anti-aliased decimation: for decimation the low-pass
// cutoff tracking the output Nyquist rate is realised by evaluating offsets
// in output-sample units and scaling the amplitude by the rate ratio.
type kernel struct {
	gmin, gmax int64
	g          []float64
}

// at returns the tap at table index j, zero outside the support so that
// float rounding at the window edges cannot index past the table.
func (k *kernel) at(j int64) float64 {
	if j < k.gmin || j > k.gmax {
		return 0
	}

	return k.g[j-k.gmin]
}

// newKernel tabulates amp * sinc(u) tapered by a Kaiser window over
// u in [-w, w], sampled at u = j/den.
func newKernel(den int64, w, amp, beta float64) kernel {
	gmax := int64(math.Ceil(w * float64(den)))

	k := kernel{
		gmin: -gmax,
		gmax: gmax,
		g:    make([]float64, 2*gmax+1),
	}

	for j := k.gmin; j <= k.gmax; j++ {
		u := float64(j) / float64(den)
		taper := window.Eval(window.TypeKaiser, (u/w+1)/2, window.WithAlpha(beta))
		k.g[j-k.gmin] = amp * core.Sinc(u) * taper
	}

	return k
}
