package ising_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/lattice"
)

var _ = Describe("Energy", func() {
	DescribeTable("uniform lattices sit at the ground-state energy",
		func(rows, cols int, d lattice.Spin, j, h float64) {
			l, err := lattice.Uniform(rows, cols, d)
			Expect(err).NotTo(HaveOccurred())

			n := float64(rows * cols)
			want := -2*j*n - float64(d)*h*n
			Expect(ising.Energy(l, j, h)).To(BeNumerically("~", want, energyTolerance(want)))
		},
		Entry("1x1 up, ferromagnetic", 1, 1, lattice.Up, 1.0, 0.0),
		Entry("1x7 down, with field", 1, 7, lattice.Down, 0.8, 0.3),
		Entry("2x2 up, antiferromagnetic", 2, 2, lattice.Up, -1.5, 2.0),
		Entry("3x5 down, zero coupling", 3, 5, lattice.Down, 0.0, -4.0),
		Entry("10x10 up, large magnitudes", 10, 10, lattice.Up, 1e12, -1e12),
		Entry("32x17 down, tiny magnitudes", 32, 17, lattice.Down, 1e-9, 3e-9),
		Entry("9x1 up, non-interacting", 9, 1, lattice.Up, 0.0, 0.0),
	)

	It("gives -8 for a 2x2 all-up lattice with J=1, H=0", func() {
		l, _ := lattice.New(2, 2)
		Expect(ising.Energy(l, 1, 0)).To(Equal(-8.0))
		Expect(ising.Magnetization(l)).To(Equal(4))
	})

	It("counts each bond of a mixed lattice once", func() {
		// sum of S*NS over all sites is zero, magnetization is -2
		l := mustRows([][]int{
			{1, -1, 1},
			{-1, -1, -1},
		})
		Expect(ising.Energy(l, 1, 0)).To(Equal(0.0))
		Expect(ising.Energy(l, 0, 1)).To(Equal(2.0))
	})

	It("does not mutate the lattice", func() {
		l := mustRandom(6, 6, 3)
		before := l.Clone()
		ising.Energy(l, 1.3, 0.2)
		ising.Magnetization(l)
		Expect(l.Equal(before)).To(BeTrue())
	})
})

var _ = Describe("Magnetization", func() {
	It("stays within [-n, n] with the parity of n", func() {
		for seed := int64(0); seed < 20; seed++ {
			rows, cols := 1+int(seed%5), 1+int(seed%7)
			l := mustRandom(rows, cols, seed)
			n := rows * cols
			m := ising.Magnetization(l)

			Expect(m).To(BeNumerically(">=", -n))
			Expect(m).To(BeNumerically("<=", n))
			Expect((m - n) % 2).To(Equal(0))
		}
	})

	It("sums spins", func() {
		l := mustRows([][]int{{1, 1, -1}, {-1, -1, -1}})
		Expect(ising.Magnetization(l)).To(Equal(-2))
	})
})
