package ising

import (
	"context"

	"github.com/san-kum/isingsim/internal/lattice"
)

// RunTempSequence runs ncycles sweeps at each temperature in temps, in the
// given order, carrying the lattice from one temperature to the next without
// re-initialising it. Snapshots and trace series are concatenated, so the
// result holds ncycles*len(temps) sweeps.
//
// An empty schedule returns an empty result. A zero or NaN entry is reported
// as a *TemperatureError; temperatures before it have already been applied to
// l and are present in the returned partial result.
func RunTempSequence(ctx context.Context, l *lattice.Lattice, temps []float64, ncycles int, j, h float64, rng Source, opts ...Option) (*Result, error) {
	if ncycles < 0 {
		return nil, ErrInvalidCycles
	}

	cfg := buildConfig(opts)
	res := newResult(l, ncycles*len(temps), cfg.snapshots)

	for i, t := range temps {
		p := Params{J: j, H: h, T: t}
		if err := p.Validate(); err != nil {
			return res, &TemperatureError{Index: i, Temperature: t}
		}
		if err := runInto(ctx, res, ncycles, p, rng, cfg); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end
	return out
}
