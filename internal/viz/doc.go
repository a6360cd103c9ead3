// Package viz provides the live terminal view of a running Ising simulation.
//
// [Model] is a Bubble Tea model that owns a lattice and sweeps it on every
// tick. The lattice is drawn with coloured half blocks, two rows per line,
// or as a braille [Canvas] for lattices too wide for the terminal. Energy
// per site is plotted with asciigraph next to a magnetization sparkline.
//
// # Key Bindings
//
//	Space      - Pause/Resume
//	N          - Single sweep while paused
//	R          - Reset lattice, parameters and seed
//	Up/Down    - Temperature +/- 0.1
//	Left/Right - Field +/- 0.1
//	T          - Cycle color themes
//	V          - Toggle block and braille view
//	?          - Show help
package viz
