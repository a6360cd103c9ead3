package ising_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/lattice"
)

var _ = Describe("RunTempSequence", func() {
	ctx := context.Background()

	It("returns ncycles snapshots per temperature in schedule order", func() {
		l := mustRandom(6, 6, 1)
		temps := []float64{3.0, 2.0, 1.0}

		res, err := ising.RunTempSequence(ctx, l, temps, 4, 1, 0, ising.NewSource(2))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Snapshots).To(HaveLen(12))
		Expect(res.Temperatures).To(Equal([]float64{3, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1}))
		Expect(res.Final).To(BeIdenticalTo(l))
	})

	It("returns an empty result for an empty schedule", func() {
		l := mustRandom(3, 3, 1)
		before := l.Clone()

		res, err := ising.RunTempSequence(ctx, l, nil, 10, 1, 0, ising.NewSource(2))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Snapshots).To(BeEmpty())
		Expect(res.Len()).To(BeZero())
		Expect(l.Equal(before)).To(BeTrue())
	})

	It("matches a single Run for a one-temperature schedule", func() {
		a := mustRandom(10, 10, 3)
		b := a.Clone()

		seq, err := ising.RunTempSequence(ctx, a, []float64{1.0}, 15, 1, 0, ising.NewSource(4))
		Expect(err).NotTo(HaveOccurred())
		run, err := ising.Run(ctx, b, 15, ising.Params{J: 1, H: 0, T: 1.0}, ising.NewSource(4))
		Expect(err).NotTo(HaveOccurred())

		Expect(seq.Len()).To(Equal(run.Len()))
		for i := range run.Snapshots {
			Expect(seq.Snapshots[i].Equal(run.Snapshots[i])).To(BeTrue(), "snapshot %d", i)
		}
		Expect(seq.Energies).To(Equal(run.Energies))
		Expect(seq.Magnetizations).To(Equal(run.Magnetizations))
		Expect(a.Equal(b)).To(BeTrue())
	})

	It("carries the lattice forward between temperatures", func() {
		a := mustRandom(8, 8, 5)
		b := a.Clone()

		seq, err := ising.RunTempSequence(ctx, a, []float64{4.0, 0.5}, 6, 1, 0.1, ising.NewSource(6))
		Expect(err).NotTo(HaveOccurred())

		rng := ising.NewSource(6)
		hot, err := ising.Run(ctx, b, 6, ising.Params{J: 1, H: 0.1, T: 4.0}, rng)
		Expect(err).NotTo(HaveOccurred())
		cold, err := ising.Run(ctx, b, 6, ising.Params{J: 1, H: 0.1, T: 0.5}, rng)
		Expect(err).NotTo(HaveOccurred())

		Expect(seq.Snapshots[5].Equal(hot.Snapshots[5])).To(BeTrue())
		Expect(seq.Snapshots[11].Equal(cold.Snapshots[5])).To(BeTrue())
		Expect(a.Equal(b)).To(BeTrue())
	})

	It("reports the index of a bad temperature and keeps earlier work", func() {
		l := mustRandom(4, 4, 1)
		res, err := ising.RunTempSequence(ctx, l, []float64{2.0, 0.0, 1.0}, 3, 1, 0, ising.NewSource(2))

		Expect(err).To(MatchError(ising.ErrInvalidTemperature))
		var te *ising.TemperatureError
		Expect(errors.As(err, &te)).To(BeTrue())
		Expect(te.Index).To(Equal(1))
		Expect(res.Len()).To(Equal(3))
	})

	It("counts observer cycles across the whole schedule", func() {
		l := mustRandom(4, 4, 1)
		last := -1
		obs := ising.ObserverFunc(func(_ *lattice.Lattice, s ising.SweepStats) { last = s.Cycle })

		_, err := ising.RunTempSequence(ctx, l, []float64{2, 1}, 5, 1, 0, ising.NewSource(2), ising.WithObserver(obs))
		Expect(err).NotTo(HaveOccurred())
		Expect(last).To(Equal(9))
	})

	It("rejects negative cycle counts", func() {
		l := mustRandom(2, 2, 1)
		_, err := ising.RunTempSequence(ctx, l, []float64{1}, -2, 1, 0, ising.NewSource(1))
		Expect(err).To(MatchError(ising.ErrInvalidCycles))
	})
})

var _ = Describe("Linspace", func() {
	It("includes both endpoints", func() {
		Expect(ising.Linspace(1, 3, 5)).To(Equal([]float64{1, 1.5, 2, 2.5, 3}))
	})

	It("counts down for descending schedules", func() {
		Expect(ising.Linspace(4, 1, 4)).To(Equal([]float64{4, 3, 2, 1}))
	})

	It("handles degenerate counts", func() {
		Expect(ising.Linspace(2, 5, 1)).To(Equal([]float64{2}))
		Expect(ising.Linspace(2, 5, 0)).To(BeNil())
		Expect(ising.Linspace(2, 5, -3)).To(BeNil())
	})
})
