package buffer

import (
	"errors"
	"testing"

	"github.com/nimbuslink/modemdsp/dsp/core"
)

func TestNewRingSizing(t *testing.T) {
	for c := 1; c <= 300; c++ {
		r := NewRing(c, 0.0)
		want := int64(core.NextPow2Uint64(uint64(c)))
		if r.Size() != want {
			t.Fatalf("capacity %d: size = %d, want %d", c, r.Size(), want)
		}

		for i := 0; i < 10; i++ {
			r.Push(float64(i))
		}
		if r.Size() != want {
			t.Fatalf("capacity %d: size changed to %d after pushes", c, r.Size())
		}
	}

	if got := NewRing(0, 0.0).Size(); got != 1 {
		t.Fatalf("capacity 0: size = %d, want 1", got)
	}
}

func TestPushedAndWindow(t *testing.T) {
	r := NewRing(16, 0.0)
	size := r.Size()

	for k := int64(1); k <= 3*size; k++ {
		r.Push(float64(k - 1))

		if got := r.Pushed(); got != uint64(k) {
			t.Fatalf("after %d pushes: Pushed = %d", k, got)
		}
		if got := r.MaxN(); got != k-1 {
			t.Fatalf("after %d pushes: MaxN = %d, want %d", k, got, k-1)
		}
		if got := r.MinN(); got != k-size {
			t.Fatalf("after %d pushes: MinN = %d, want %d", k, got, k-size)
		}
	}
}

func TestResidency(t *testing.T) {
	r := NewRing(8, -1.0)
	size := r.Size()
	k := 3*size + 5

	for i := int64(0); i < k; i++ {
		r.Push(float64(i))
	}

	// Resident elements hold the value equal to their absolute index.
	for n := r.MinN(); n <= r.MaxN(); n++ {
		v, err := r.At(n)
		if err != nil {
			t.Fatalf("At(%d) error = %v", n, err)
		}
		if v != float64(n) {
			t.Fatalf("At(%d) = %v, want %v", n, v, float64(n))
		}
	}

	// The oldest k-size values are gone.
	for n := int64(0); n < k-size; n++ {
		if _, err := r.At(n); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("At(%d) error = %v, want ErrOutOfRange", n, err)
		}
	}
}

func TestBoundary(t *testing.T) {
	r := NewRing(8, 0.0)
	for i := 0; i < 20; i++ {
		r.Push(float64(i))
	}

	if _, err := r.At(r.MinN()); err != nil {
		t.Fatalf("At(MinN) error = %v", err)
	}
	if _, err := r.At(r.MaxN()); err != nil {
		t.Fatalf("At(MaxN) error = %v", err)
	}
	if _, err := r.At(r.MinN() - 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatal("At(MinN-1) should fail")
	}
	if _, err := r.At(r.MaxN() + 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatal("At(MaxN+1) should fail")
	}
}

func TestFillValueBeforeWraparound(t *testing.T) {
	r := NewRing(8, 7.5)
	r.Push(1.0)

	// Negative indices are inside the window and still hold the fill value.
	v, err := r.At(-1)
	if err != nil {
		t.Fatalf("At(-1) error = %v", err)
	}
	if v != 7.5 {
		t.Fatalf("At(-1) = %v, want fill 7.5", v)
	}

	if _, err := r.At(1); !errors.Is(err, ErrOutOfRange) {
		t.Fatal("At(1) before second push should fail")
	}
}

func TestSet(t *testing.T) {
	r := NewRing(4, 0.0)
	for i := 0; i < 6; i++ {
		r.Push(float64(i))
	}

	if err := r.Set(4, 42); err != nil {
		t.Fatalf("Set(4) error = %v", err)
	}
	if v := r.Get(4); v != 42 {
		t.Fatalf("Get(4) = %v after Set, want 42", v)
	}
	if err := r.Set(0, 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Set(0) error = %v, want ErrOutOfRange", err)
	}
}

func TestComplexElements(t *testing.T) {
	r := NewRing(4, complex128(0))
	r.Push(1 + 2i)
	r.Push(3 - 4i)

	v, err := r.At(1)
	if err != nil {
		t.Fatalf("At(1) error = %v", err)
	}
	if v != 3-4i {
		t.Fatalf("At(1) = %v, want 3-4i", v)
	}
}

func BenchmarkPush(b *testing.B) {
	r := NewRing(1024, complex128(0))
	for range b.N {
		r.Push(1 + 1i)
	}
}

func BenchmarkGet(b *testing.B) {
	r := NewRing(1024, complex128(0))
	for i := 0; i < 2048; i++ {
		r.Push(complex(float64(i), 0))
	}
	var acc complex128
	for i := range b.N {
		acc += r.Get(r.MaxN() - int64(i%1024))
	}
	_ = acc
}
