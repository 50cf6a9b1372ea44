// Package sweep runs many independent random soups in parallel and reports
// how each one evolved.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sort"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"toroid/pkg/sims/life"
)

// ErrInvalidOptions is returned for unusable sweep options.
var ErrInvalidOptions = errors.New("sweep: invalid options")

// Options controls a sweep.
type Options struct {
	Width       int
	Height      int
	Generations int
	Density     float64
	// Workers bounds the number of grids simulated at once. Zero means one
	// per CPU.
	Workers int
}

// Result summarizes one soup.
type Result struct {
	Seed            int64
	Generations     int
	InitialPop      int
	FinalPopulation int
	PeakPopulation  int
	// StableAt is the generation after which nothing changed, or -1 if the
	// soup was still changing when the sweep stopped.
	StableAt int
}

// Stable reports whether the soup settled into a still life.
func (r Result) Stable() bool { return r.StableAt >= 0 }

// Seeds returns n consecutive seeds starting at first.
func Seeds(first int64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = first + int64(i)
	}
	return out
}

// Run simulates one grid per seed on a bounded pool of goroutines. Each grid
// is owned by exactly one goroutine. Results are sorted by seed.
func Run(ctx context.Context, opts Options, seeds []int64) ([]Result, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Generations < 0 {
		return nil, fmt.Errorf("%w: %dx%d for %d generations", ErrInvalidOptions, opts.Width, opts.Height, opts.Generations)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			res, err := runSeed(ctx, opts, seed)
			if err != nil {
				return err
			}
			results[i] = res
			slog.Debug("soup finished", "seed", seed, "final", res.FinalPopulation, "stable_at", res.StableAt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Seed < results[j].Seed })
	return results, nil
}

func runSeed(ctx context.Context, opts Options, seed int64) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	g, err := life.New(opts.Width, opts.Height)
	if err != nil {
		return Result{}, err
	}
	g.Randomize(seed, opts.Density)
	g.ChangedCells()

	pop := g.Population()
	res := Result{Seed: seed, InitialPop: pop, PeakPopulation: pop, StableAt: -1}
	for gen := 1; gen <= opts.Generations; gen++ {
		if gen%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		g.Commit()
		if g.ChangedCells().Len() == 0 {
			res.StableAt = gen - 1
			break
		}
		g.Evolve()
		res.Generations = gen
		pop = g.Population()
		res.PeakPopulation = max(res.PeakPopulation, pop)
	}
	res.FinalPopulation = g.Population()
	return res, nil
}

// WriteTable prints results as an aligned table.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tGENERATIONS\tINITIAL\tFINAL\tPEAK\tSTABLE AT")
	for _, r := range results {
		stable := "-"
		if r.Stable() {
			stable = fmt.Sprint(r.StableAt)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\n", r.Seed, r.Generations, r.InitialPop, r.FinalPopulation, r.PeakPopulation, stable)
	}
	return tw.Flush()
}
