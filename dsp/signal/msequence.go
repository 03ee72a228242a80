package signal

import "fmt"

// Fibonacci LFSR feedback taps yielding maximal-length sequences, indexed
// by register length. Tap values are 1-based bit positions counted from the
// register's least significant end.
var msequenceTaps = map[int][]int{
	2:  {2, 1},
	3:  {3, 2},
	4:  {4, 3},
	5:  {5, 3},
	6:  {6, 5},
	7:  {7, 6},
	8:  {8, 6, 5, 4},
	9:  {9, 5},
	10: {10, 7},
	11: {11, 9},
	12: {12, 6, 4, 1},
	13: {13, 4, 3, 1},
	14: {14, 5, 3, 1},
	15: {15, 14},
	16: {16, 15, 13, 4},
}

// MSequence generates a maximal-length binary sequence of length 2^n - 1
// from an n-bit linear feedback shift register seeded with all ones. The
// result contains 2^(n-1) ones and 2^(n-1) - 1 zeros, and its circular
// autocorrelation is -1 at every nonzero lag.
func MSequence(n int) ([]int, error) {
	taps, ok := msequenceTaps[n]
	if !ok {
		return nil, fmt.Errorf("msequence register length out of range [2, 16]: %d", n)
	}

	mask := uint(1)<<n - 1
	state := mask

	out := make([]int, mask)
	for i := range out {
		out[i] = int(state >> (n - 2) & 1)

		fb := uint(0)
		for _, t := range taps {
			fb ^= state >> (t - 1) & 1
		}

		state = (state<<1 | fb) & mask
	}

	return out, nil
}
