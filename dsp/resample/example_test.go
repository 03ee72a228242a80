package resample_test

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/nimbuslink/modemdsp/dsp/resample"
)

func ExampleNewUpsampler() {
	u, err := resample.NewUpsampler(44100, 48000)
	if err != nil {
		panic(err)
	}

	fmt.Println(u.Ratio())
	// Output:
	// 160/147
}

func ExampleUpsampler_At() {
	u, err := resample.NewUpsampler(1, 2)
	if err != nil {
		panic(err)
	}

	// A unit tone at a tenth of the input rate.
	for m := range 200 {
		phase := 2 * math.Pi * 0.1 * float64(m)
		u.Push(complex(math.Cos(phase), math.Sin(phase)))
	}

	y, err := u.At(u.MaxN())
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.2f\n", cmplx.Abs(y))
	// Output:
	// 1.00
}

func ExampleUpsampler_MinN() {
	u, err := resample.NewUpsampler(1, 2)
	if err != nil {
		panic(err)
	}

	for range 200 {
		u.Push(0)
	}

	fmt.Println(u.MinN(), u.MaxN())
	// Output:
	// 202 336
}
