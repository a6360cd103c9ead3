// Package ising runs Metropolis Monte Carlo simulations of the 2D Ising model.
//
// The package is organised leaves first:
//
//   - [Energy] and [Magnetization]: full-lattice observables
//   - [Sweep]: one Metropolis pass over every site in row-major order
//   - [Run]: repeated sweeps at a fixed temperature with per-sweep snapshots
//   - [RunTempSequence]: chained runs over a temperature schedule
//   - [Ensemble]: independent seeded sequences run concurrently
//
// # Example
//
//	rng := ising.NewSource(42)
//	l, _ := lattice.Random(64, 64, rng)
//	temps := ising.Linspace(4.0, 0.5, 20)
//	res, err := ising.RunTempSequence(ctx, l, temps, 100, 1.0, 0.0, rng)
//
// # Reproducibility
//
// Each sweep draws exactly one uniform value per site, in traversal order,
// from the injected [Source]. Two runs from equal lattices with equally
// seeded sources produce identical trajectories.
//
// # Thread Safety
//
// A lattice has a single owner; none of the functions here are safe to call
// concurrently on the same lattice or [Source]. Use [Ensemble] for parallel
// runs, which gives every run its own lattice and generator.
package ising
