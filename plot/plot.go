// Package plot renders families of polynomials to gnuplot scripts with
// inline sampled data.
package plot

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/montanaflynn/stats"

	"github.com/numlib/polyreal/poly"
)

// ErrInsufficientSamples is returned by Plot when fewer than 2 samples
// are requested. It is recoverable: no file is created.
var ErrInsufficientSamples = errors.New("plot: requested less than 2 samples")

// Plot samples each polynomial at n evenly spaced points over
// [left, right], both endpoints included, and writes a gnuplot script
// with one inline data block per polynomial to <name>.gnuplot. Each
// block is titled with the polynomial rendered in descending power
// order. left < right is expected; n < 2 is rejected with
// ErrInsufficientSamples and an empty collection with a plain error.
func Plot(ps []poly.Polynomial, left, right float64, n int, name string) error {
	if n < 2 {
		return fmt.Errorf("cannot Plot %q: %w", name, ErrInsufficientSamples)
	}
	if len(ps) == 0 {
		return fmt.Errorf("cannot Plot %q: no polynomials", name)
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = left + (right-left)*float64(i)/float64(n-1)
	}

	series := make([][]float64, len(ps))
	all := make([]float64, 0, len(ps)*n)
	for i, p := range ps {
		ys := make([]float64, n)
		for j, x := range xs {
			ys[j] = p.At(x)
		}
		series[i] = ys
		all = append(all, ys...)
	}

	f, err := os.Create(name + ".gnuplot")
	if err != nil {
		return fmt.Errorf("cannot Plot %q: %w", name, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "set terminal svg\n")
	fmt.Fprintf(w, "set output '%s.svg'\n", name)
	fmt.Fprintf(w, "set xlabel 'x'\n")
	fmt.Fprintf(w, "set ylabel 'y'\n")
	fmt.Fprintf(w, "set grid\n")

	// 5% of headroom around the sampled extrema; a flat series still
	// gets a non-degenerate range.
	if min, err := stats.Min(all); err == nil {
		max, _ := stats.Max(all)
		pad := (max - min) * 0.05
		if pad == 0 {
			pad = 1
		}
		fmt.Fprintf(w, "set yrange [%g:%g]\n", min-pad, max+pad)
	}

	fmt.Fprintf(w, "plot")
	for i, p := range ps {
		if i > 0 {
			fmt.Fprintf(w, ",")
		}
		fmt.Fprintf(w, " '-' using 1:2 with lines title %q", p.String())
	}
	fmt.Fprintf(w, "\n")

	for i := range ps {
		for j, x := range xs {
			fmt.Fprintf(w, "%g %g\n", x, series[i][j])
		}
		fmt.Fprintf(w, "e\n")
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("cannot Plot %q: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot Plot %q: %w", name, err)
	}
	return nil
}
