package core

import "testing"

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 4, 16)
	got := EnsureLen(buf, 8)
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	if &got[0] != &buf[0] {
		t.Fatal("capacity not reused")
	}

	grown := EnsureLen(buf, 32)
	if len(grown) != 32 {
		t.Fatalf("len = %d, want 32", len(grown))
	}

	c := EnsureLen([]complex128(nil), 3)
	if len(c) != 3 {
		t.Fatalf("complex len = %d, want 3", len(c))
	}
}

func TestZeroAndCopyInto(t *testing.T) {
	buf := []complex128{1 + 2i, 3, 4i}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("index %d: %v, want 0", i, v)
		}
	}

	dst := make([]float64, 3)
	n := CopyInto(dst, []float64{1, 2})
	if n != 2 || dst[0] != 1 || dst[1] != 2 || dst[2] != 0 {
		t.Fatalf("CopyInto result n=%d dst=%v", n, dst)
	}
}
