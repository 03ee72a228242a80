// Command ratioinfo prints rational approximations of sample-rate ratios
// and the resampler configuration they imply.
//
// Usage:
//
//	ratioinfo [flags] <in-rate> <out-rate>
//
// Examples:
//
//	ratioinfo 44100 48000
//	ratioinfo -maxden 512 1 1.41421356
//	ratioinfo -convergents 8 44100 48000
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/nimbuslink/modemdsp/dsp/rational"
	"github.com/nimbuslink/modemdsp/dsp/resample"
)

func main() {
	maxden := flag.Int("maxden", 4096, "maximum denominator of the rational approximation")
	width := flag.Float64("width", 30, "interpolation window half-width in output samples")
	convergents := flag.Int("convergents", 0, "also list the first N continued-fraction convergents")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ratioinfo [flags] <in-rate> <out-rate>\n\n")
		fmt.Fprintf(os.Stderr, "Prints the rational approximation of out-rate/in-rate and the\n")
		fmt.Fprintf(os.Stderr, "resampler configuration it implies.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ratioinfo 44100 48000\n")
		fmt.Fprintf(os.Stderr, "  ratioinfo -maxden 512 1 1.41421356\n")
		fmt.Fprintf(os.Stderr, "  ratioinfo -convergents 8 44100 48000\n")
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	inRate, err := strconv.ParseFloat(flag.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid in-rate %q: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}

	outRate, err := strconv.ParseFloat(flag.Arg(1), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid out-rate %q: %v\n", flag.Arg(1), err)
		os.Exit(1)
	}

	if inRate <= 0 || outRate <= 0 {
		fmt.Fprintf(os.Stderr, "error: rates must be positive\n")
		os.Exit(1)
	}

	if *convergents > 0 {
		printConvergents(outRate/inRate, *convergents)
	}

	printResampler(inRate, outRate, *maxden, *width)
}

func printConvergents(x float64, n int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Rank\tFraction\tValue\tError\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for i, c := range rational.Convergents(x, n) {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%.12f\t%.3e\n",
			i+1, c, c.Float(), x-c.Float()); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	fmt.Println()
}

func printResampler(inRate, outRate float64, maxden int, width float64) {
	opts := []resample.Option{
		resample.WithMaxDenominator(maxden),
		resample.WithWindowWidth(width),
	}

	var (
		kind string
		r    rational.Rational
		s    interface {
			Ratio() rational.Rational
			Gamma() float64
			Size() int64
			Support() (int64, int64)
		}
	)

	if outRate >= inRate {
		u, err := resample.NewUpsampler(inRate, outRate, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		kind, s = "upsampler", u
	} else {
		d, err := resample.NewDownsampler(inRate, outRate, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		kind, s = "downsampler", d
	}

	r = s.Ratio()
	gmin, gmax := s.Support()

	// The downsampler approximates the reciprocal ratio.
	ratio := outRate / inRate
	if outRate < inRate {
		ratio = inRate / outRate
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"Variant", kind},
		{"Rate ratio", fmt.Sprintf("%v/%v", outRate, inRate)},
		{"Approximation", r.String()},
		{"Approximation error", fmt.Sprintf("%.3e", ratio-r.Float())},
		{"Gamma", fmt.Sprintf("%.12f", s.Gamma())},
		{"Buffer size", fmt.Sprintf("%d samples", s.Size())},
		{"Kernel taps", fmt.Sprintf("%d [%d, %d]", gmax-gmin+1, gmin, gmax)},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row.label, row.value); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
