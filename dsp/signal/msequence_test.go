package signal

import "testing"

func TestMSequenceLength3(t *testing.T) {
	got, err := MSequence(3)
	if err != nil {
		t.Fatalf("MSequence: %v", err)
	}

	want := []int{1, 1, 0, 0, 1, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMSequenceBalance(t *testing.T) {
	for n := 2; n <= 16; n++ {
		seq, err := MSequence(n)
		if err != nil {
			t.Fatalf("MSequence(%d): %v", n, err)
		}

		if want := 1<<n - 1; len(seq) != want {
			t.Fatalf("MSequence(%d) length = %d, want %d", n, len(seq), want)
		}

		ones := 0

		for _, b := range seq {
			if b != 0 && b != 1 {
				t.Fatalf("MSequence(%d) contains %d", n, b)
			}

			ones += b
		}

		if want := 1 << (n - 1); ones != want {
			t.Fatalf("MSequence(%d) has %d ones, want %d", n, ones, want)
		}
	}
}

func TestMSequenceAutocorrelation(t *testing.T) {
	seq, err := MSequence(7)
	if err != nil {
		t.Fatalf("MSequence: %v", err)
	}

	// In bipolar form every nonzero circular lag correlates to exactly -1.
	size := len(seq)

	bipolar := make([]int, size)
	for i, b := range seq {
		bipolar[i] = 2*b - 1
	}

	for lag := 1; lag < size; lag++ {
		sum := 0
		for i := range bipolar {
			sum += bipolar[i] * bipolar[(i+lag)%size]
		}

		if sum != -1 {
			t.Fatalf("autocorrelation at lag %d = %d, want -1", lag, sum)
		}
	}
}

func TestMSequenceOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 17} {
		if _, err := MSequence(n); err == nil {
			t.Fatalf("MSequence(%d) should fail", n)
		}
	}
}
