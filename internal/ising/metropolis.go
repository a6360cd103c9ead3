package ising

import (
	"math"

	"github.com/san-kum/isingsim/internal/lattice"
)

// Sweep performs one Metropolis pass over l, visiting sites in row-major
// order and mutating l in place.
//
// For each site the flip cost is dE = 2*J*S*NS + 2*H*S. One uniform value u
// is drawn per site whether or not it is needed, and the flip is accepted
// when dE < 0 or u < exp(-dE/T). Accepted flips are written immediately, so
// later sites in the same pass see them.
//
// Energy and magnetization are recomputed from scratch at the start and then
// updated per accepted flip. A zero or NaN temperature fails before the
// lattice or the source is touched.
func Sweep(l *lattice.Lattice, p Params, rng Source) (SweepResult, error) {
	if err := p.Validate(); err != nil {
		return SweepResult{}, err
	}

	res := SweepResult{
		Energy:        Energy(l, p.J, p.H),
		Magnetization: Magnetization(l),
	}

	for r := 0; r < l.Rows(); r++ {
		for c := 0; c < l.Cols(); c++ {
			s := float64(l.At(r, c))
			ns := float64(l.NeighborSum(r, c))
			dE := 2*p.J*s*ns + 2*p.H*s

			u := rng.Float64()
			if dE < 0.0 || u < math.Exp((-1.0*dE)/p.T) {
				flipped := l.Flip(r, c)
				res.Energy += dE
				res.Magnetization += 2 * int(flipped)
				res.Accepted++
			}
		}
	}

	return res, nil
}
