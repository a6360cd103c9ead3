package ising_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/lattice"
)

var _ = Describe("Run", func() {
	var (
		ctx context.Context
		p   ising.Params
	)

	BeforeEach(func() {
		ctx = context.Background()
		p = ising.Params{J: 1, H: 0, T: 2.0}
	})

	It("returns one snapshot per sweep", func() {
		l := mustRandom(8, 8, 1)
		res, err := ising.Run(ctx, l, 17, p, ising.NewSource(2))
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Snapshots).To(HaveLen(17))
		Expect(res.Len()).To(Equal(17))
		Expect(res.Energies).To(HaveLen(17))
		Expect(res.Magnetizations).To(HaveLen(17))
		Expect(res.Accepted).To(HaveLen(17))
		Expect(res.Temperatures).To(HaveEach(2.0))
	})

	It("threads the caller's lattice through and returns it", func() {
		l := mustRandom(5, 5, 3)
		res, err := ising.Run(ctx, l, 4, p, ising.NewSource(4))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Final).To(BeIdenticalTo(l))
		Expect(res.Snapshots[3].Equal(l)).To(BeTrue())
	})

	It("leaves the lattice untouched for zero cycles", func() {
		l := mustRandom(5, 5, 3)
		before := l.Clone()
		src := &scriptedSource{fallback: 0.0}

		res, err := ising.Run(ctx, l, 0, p, src)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Snapshots).To(BeEmpty())
		Expect(res.Len()).To(BeZero())
		Expect(l.Equal(before)).To(BeTrue())
		Expect(src.draws).To(BeZero())
	})

	It("matches a manual sequence of sweeps", func() {
		l := mustRandom(6, 9, 5)
		replay := l.Clone()

		res, err := ising.Run(ctx, l, 10, p, ising.NewSource(6))
		Expect(err).NotTo(HaveOccurred())

		rng := ising.NewSource(6)
		for i := 0; i < 10; i++ {
			sr, err := ising.Sweep(replay, p, rng)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Snapshots[i].Equal(replay)).To(BeTrue(), "snapshot %d", i)
			Expect(res.Energies[i]).To(Equal(sr.Energy))
			Expect(res.Magnetizations[i]).To(Equal(sr.Magnetization))
			Expect(res.Accepted[i]).To(Equal(sr.Accepted))
		}
	})

	It("stores independent copies rather than views", func() {
		l := mustRandom(4, 4, 7)
		res, err := ising.Run(ctx, l, 3, ising.Params{J: 0, H: 0, T: 1}, ising.NewSource(8))
		Expect(err).NotTo(HaveOccurred())

		// with J = H = 0 each sweep negates the lattice
		Expect(res.Snapshots[0].Equal(res.Snapshots[1])).To(BeFalse())
		Expect(res.Snapshots[0].Equal(res.Snapshots[2])).To(BeTrue())

		frozen := res.Snapshots[2].Clone()
		l.Negate()
		Expect(res.Snapshots[2].Equal(frozen)).To(BeTrue())
	})

	It("records traces consistent with each snapshot", func() {
		l := mustRandom(12, 12, 9)
		res, err := ising.Run(ctx, l, 20, ising.Params{J: 1, H: 0.3, T: 1.8}, ising.NewSource(10))
		Expect(err).NotTo(HaveOccurred())

		for i, snap := range res.Snapshots {
			want := ising.Energy(snap, 1, 0.3)
			Expect(res.Energies[i]).To(BeNumerically("~", want, energyTolerance(want)))
			Expect(res.Magnetizations[i]).To(Equal(ising.Magnetization(snap)))
		}
		Expect(res.AcceptanceRate()).To(And(BeNumerically(">", 0), BeNumerically("<=", 1)))
	})

	It("rejects negative cycle counts", func() {
		l := mustRandom(2, 2, 1)
		_, err := ising.Run(ctx, l, -1, p, ising.NewSource(1))
		Expect(err).To(MatchError(ising.ErrInvalidCycles))
	})

	It("rejects a zero temperature before sweeping", func() {
		l := mustRandom(3, 3, 1)
		before := l.Clone()
		_, err := ising.Run(ctx, l, 5, ising.Params{J: 1, T: 0}, ising.NewSource(1))
		Expect(err).To(MatchError(ising.ErrInvalidTemperature))
		Expect(l.Equal(before)).To(BeTrue())
	})

	It("stops between sweeps when the context is cancelled", func() {
		cctx, cancel := context.WithCancel(ctx)
		l := mustRandom(4, 4, 2)

		stop := ising.ObserverFunc(func(_ *lattice.Lattice, s ising.SweepStats) {
			if s.Cycle == 2 {
				cancel()
			}
		})
		res, err := ising.Run(cctx, l, 10, p, ising.NewSource(3), ising.WithObserver(stop))
		Expect(err).To(MatchError(context.Canceled))
		Expect(res.Len()).To(Equal(3))
	})

	It("notifies observers after every sweep", func() {
		l := mustRandom(4, 6, 2)
		var seen []ising.SweepStats
		obs := ising.ObserverFunc(func(cur *lattice.Lattice, s ising.SweepStats) {
			Expect(cur).To(BeIdenticalTo(l))
			seen = append(seen, s)
		})

		res, err := ising.Run(ctx, l, 5, p, ising.NewSource(3), ising.WithObserver(obs))
		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(HaveLen(5))
		for i, s := range seen {
			Expect(s.Cycle).To(Equal(i))
			Expect(s.Sites).To(Equal(24))
			Expect(s.Energy).To(Equal(res.Energies[i]))
		}
	})

	It("can skip snapshots while keeping the trace", func() {
		l := mustRandom(4, 4, 2)
		res, err := ising.Run(ctx, l, 6, p, ising.NewSource(3), ising.WithoutSnapshots())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Snapshots).To(BeEmpty())
		Expect(res.Len()).To(Equal(6))
	})
})
