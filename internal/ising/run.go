package ising

import (
	"context"

	"github.com/san-kum/isingsim/internal/lattice"
)

// Run performs ncycles sweeps of l at fixed parameters and records a deep
// copy of the lattice after each sweep.
//
// The returned Result.Final is l itself, mutated in place. ncycles == 0
// returns an empty result and leaves l untouched. If ctx is cancelled between
// sweeps, the sweeps completed so far are returned with ctx.Err().
func Run(ctx context.Context, l *lattice.Lattice, ncycles int, p Params, rng Source, opts ...Option) (*Result, error) {
	if ncycles < 0 {
		return nil, ErrInvalidCycles
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cfg := buildConfig(opts)
	res := newResult(l, ncycles, cfg.snapshots)
	if err := runInto(ctx, res, ncycles, p, rng, cfg); err != nil {
		return res, err
	}
	return res, nil
}

func runInto(ctx context.Context, res *Result, ncycles int, p Params, rng Source, cfg runConfig) error {
	l := res.Final
	for i := 0; i < ncycles; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		sr, err := Sweep(l, p, rng)
		if err != nil {
			return err
		}

		if cfg.snapshots {
			res.Snapshots = append(res.Snapshots, l.Clone())
		}
		res.append(p.T, sr)

		if len(cfg.observers) > 0 {
			stats := res.Stats(res.Len() - 1)
			for _, o := range cfg.observers {
				o.OnSweep(l, stats)
			}
		}
	}
	return nil
}
