package ising

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/isingsim/internal/lattice"
)

// Ensemble runs the same temperature schedule for several seeds in parallel.
// Every run works on its own clone of the initial lattice and its own
// generator seeded with SeedStart+i.
type Ensemble struct {
	Runs      int
	SeedStart int64
	// Workers bounds concurrency; zero means one goroutine per run.
	Workers int
}

func NewEnsemble(runs int, seedStart int64) *Ensemble {
	return &Ensemble{Runs: runs, SeedStart: seedStart}
}

// Run executes the schedule for every seed and returns results indexed by
// run. The first error cancels the remaining runs. Observers passed in opts
// are shared by all runs and must be safe for concurrent use.
func (e *Ensemble) Run(ctx context.Context, initial *lattice.Lattice, temps []float64, ncycles int, j, h float64, opts ...Option) ([]*Result, error) {
	if e.Runs <= 0 {
		return nil, ErrInvalidEnsemble
	}

	results := make([]*Result, e.Runs)
	g, ctx := errgroup.WithContext(ctx)
	if e.Workers > 0 {
		g.SetLimit(e.Workers)
	}

	for i := 0; i < e.Runs; i++ {
		idx := i
		g.Go(func() error {
			l := initial.Clone()
			rng := NewSource(e.SeedStart + int64(idx))
			res, err := RunTempSequence(ctx, l, temps, ncycles, j, h, rng, opts...)
			results[idx] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
