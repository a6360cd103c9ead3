package ising_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/lattice"
)

var _ = Describe("Sweep", func() {
	DescribeTable("running energy and magnetization match a full recomputation",
		func(rows, cols int, p ising.Params, seed int64) {
			l := mustRandom(rows, cols, seed)
			rng := ising.NewSource(seed + 100)

			for i := 0; i < 25; i++ {
				res, err := ising.Sweep(l, p, rng)
				Expect(err).NotTo(HaveOccurred())

				want := ising.Energy(l, p.J, p.H)
				Expect(res.Energy).To(BeNumerically("~", want, energyTolerance(want)))
				Expect(res.Magnetization).To(Equal(ising.Magnetization(l)))
				Expect(l.Validate()).To(Succeed())
			}
		},
		Entry("2x2 ferromagnet near Tc", 2, 2, ising.Params{J: 1, H: 0, T: 2.27}, int64(1)),
		Entry("3x5 with field", 3, 5, ising.Params{J: 1, H: 0.5, T: 1.5}, int64(2)),
		Entry("16x16 cold", 16, 16, ising.Params{J: 1, H: 0, T: 0.5}, int64(3)),
		Entry("16x16 hot", 16, 16, ising.Params{J: 1, H: 0, T: 10}, int64(4)),
		Entry("8x12 antiferromagnet", 8, 12, ising.Params{J: -1, H: 0.2, T: 1.0}, int64(5)),
		Entry("7x9 negative temperature", 7, 9, ising.Params{J: 0.8, H: -0.3, T: -2.0}, int64(6)),
		Entry("20x20 fractional coupling", 20, 20, ising.Params{J: 0.37, H: 0.11, T: 1.9}, int64(7)),
	)

	DescribeTable("J = H = 0 accepts every flip and negates the lattice",
		func(rows, cols int, t float64) {
			l := mustRandom(rows, cols, 11)
			original := l.Clone()

			res, err := ising.Sweep(l, ising.Params{J: 0, H: 0, T: t}, ising.NewSource(12))
			Expect(err).NotTo(HaveOccurred())

			original.Negate()
			Expect(l.Equal(original)).To(BeTrue())
			Expect(res.Accepted).To(Equal(rows * cols))
			Expect(res.Magnetization).To(Equal(ising.Magnetization(l)))
		},
		Entry("1x1", 1, 1, 1.0),
		Entry("1x9 ring", 1, 9, 0.1),
		Entry("5x5", 5, 5, 3.0),
		Entry("12x7 negative T", 12, 7, -1.0),
	)

	It("keeps the 2x2 all-up ground state consistent at T=0.1", func() {
		l, _ := lattice.New(2, 2)
		Expect(ising.Energy(l, 1, 0)).To(Equal(-8.0))

		res, err := ising.Sweep(l, ising.Params{J: 1, H: 0, T: 0.1}, ising.NewSource(99))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Energy).To(BeNumerically("~", ising.Energy(l, 1, 0), 1e-9))
		Expect(res.Magnetization).To(Equal(ising.Magnetization(l)))
	})

	It("draws exactly one value per site in every case", func() {
		l := mustRandom(6, 4, 21)
		src := &scriptedSource{fallback: 0.5}

		_, err := ising.Sweep(l, ising.Params{J: 1, H: 0.2, T: 2}, src)
		Expect(err).NotTo(HaveOccurred())
		Expect(src.draws).To(Equal(24))
	})

	It("visits sites in row-major order", func() {
		// all-up 4x4 with J=1: dE = 8 everywhere, so only u=0 accepts
		l, _ := lattice.New(4, 4)
		src := &scriptedSource{values: []float64{0.99, 0.0}, fallback: 0.99}

		_, err := ising.Sweep(l, ising.Params{J: 1, H: 0, T: 1}, src)
		Expect(err).NotTo(HaveOccurred())

		want, _ := lattice.New(4, 4)
		want.Flip(0, 1)
		Expect(l.Equal(want)).To(BeTrue(), "got\n%s", l)
	})

	It("lets later sites see flips made earlier in the same pass", func() {
		// (0,0) flips on u=0. (0,1) then has NS=2 and dE=4, so
		// u=0.01 < exp(-4) accepts it; against the stale NS=4 it would not.
		Expect(0.01).To(BeNumerically("<", math.Exp(-4)))
		Expect(0.01).To(BeNumerically(">", math.Exp(-8)))

		l, _ := lattice.New(4, 4)
		src := &scriptedSource{values: []float64{0.0, 0.01}, fallback: 0.99}

		res, err := ising.Sweep(l, ising.Params{J: 1, H: 0, T: 1}, src)
		Expect(err).NotTo(HaveOccurred())

		want, _ := lattice.New(4, 4)
		want.Flip(0, 0)
		want.Flip(0, 1)
		Expect(l.Equal(want)).To(BeTrue(), "got\n%s", l)
		Expect(res.Accepted).To(Equal(2))
		Expect(res.Energy).To(BeNumerically("~", ising.Energy(l, 1, 0), 1e-9))
	})

	It("always accepts moves that lower the energy", func() {
		// a single down spin in an up field: dE = -8 - 2H < 0
		l, _ := lattice.New(3, 3)
		l.Flip(1, 1)
		src := &scriptedSource{fallback: 0.999999}

		_, err := ising.Sweep(l, ising.Params{J: 1, H: 0.5, T: 1e-3}, src)
		Expect(err).NotTo(HaveOccurred())
		Expect(l.At(1, 1)).To(Equal(lattice.Up))
	})

	DescribeTable("rejects temperatures it cannot divide by",
		func(t float64) {
			l := mustRandom(4, 4, 5)
			before := l.Clone()
			src := &scriptedSource{fallback: 0.5}

			_, err := ising.Sweep(l, ising.Params{J: 1, H: 0, T: t}, src)
			Expect(err).To(MatchError(ising.ErrInvalidTemperature))

			var te *ising.TemperatureError
			Expect(err).To(BeAssignableToTypeOf(te))
			Expect(l.Equal(before)).To(BeTrue())
			Expect(src.draws).To(BeZero())
		},
		Entry("zero", 0.0),
		Entry("NaN", math.NaN()),
	)

	It("is reproducible for equal seeds", func() {
		a := mustRandom(10, 10, 8)
		b := a.Clone()
		p := ising.Params{J: 1, H: 0.1, T: 2.0}

		ra, _ := ising.Sweep(a, p, ising.NewSource(77))
		rb, _ := ising.Sweep(b, p, ising.NewSource(77))

		Expect(a.Equal(b)).To(BeTrue())
		Expect(ra).To(Equal(rb))
	})
})
