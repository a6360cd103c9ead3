// Package render turns simulation output into files: animated GIFs of the
// lattice and PNG line charts of the energy and magnetization traces.
package render
