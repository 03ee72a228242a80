package buffer_test

import (
	"fmt"

	"github.com/nimbuslink/modemdsp/dsp/buffer"
)

func ExampleRing() {
	r := buffer.NewRing(4, 0.0)
	for i := 0; i < 6; i++ {
		r.Push(float64(i * 10))
	}

	fmt.Println("size:", r.Size())
	fmt.Println("window:", r.MinN(), "to", r.MaxN())

	v, _ := r.At(r.MaxN())
	fmt.Println("newest:", v)

	_, err := r.At(0)
	fmt.Println("evicted:", err != nil)
	// Output:
	// size: 4
	// window: 2 to 5
	// newest: 50
	// evicted: true
}
