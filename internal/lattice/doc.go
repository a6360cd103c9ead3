// Package lattice provides the spin lattice used by the Ising simulation.
//
// A [Lattice] is a rectangular grid of [Spin] values stored in row-major
// order. Every index operation wraps toroidally, so the neighbours of a cell
// on the edge are found on the opposite edge. Degenerate shapes such as 1x1
// or 1xN are valid; a cell may then be its own neighbour.
//
// Spins are only written through validated paths ([New], [Uniform],
// [Random], [FromRows], [Lattice.Set], [Lattice.Flip]), so a lattice always
// holds values in {-1, +1}.
//
// # Example
//
//	l, err := lattice.Random(64, 64, rng)
//	if err != nil {
//	    return err
//	}
//	ns := l.NeighborSum(0, 0) // wraps to row 63 and column 63
package lattice
