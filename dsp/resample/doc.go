// Package resample provides streaming fractional sample-rate conversion of
// complex baseband samples using windowed-sinc interpolation.
//
// The conversion factor is approximated by an exactly-reduced rational p/q
// (continued-fraction convergent), which makes the set of fractional sample
// offsets finite so the interpolation kernel can be tabulated once at
// construction. Input samples live in a power-of-two circular buffer
// addressed by absolute index; output samples are read at absolute output
// indices inside a sliding validity window.
//
// Typical streaming loop:
//
//	u, _ := resample.NewUpsampler(1.0, 2.0)
//	for sample := range source {
//		u.Push(sample)
//		for n := next; n <= u.MaxN(); n++ {
//			y, _ := u.At(n)
//			sink(y)
//		}
//		next = u.MaxN() + 1
//	}
//
// Early in the stream the window [MinN, MaxN] may be empty; callers poll
// MinN() <= MaxN() before the first read. Memory is fixed at construction:
// unbounded streams are processed with O(1) space.
//
// Instances are not safe for concurrent use; a single goroutine must own
// both pushes and reads, or the caller serializes access externally.
package resample
