package ising_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/isingsim/internal/ising"
)

var _ = Describe("Ensemble", func() {
	ctx := context.Background()
	temps := []float64{3.0, 1.5}

	It("runs every seed on a private copy of the initial lattice", func() {
		initial := mustRandom(8, 8, 1)
		before := initial.Clone()

		e := ising.NewEnsemble(4, 100)
		results, err := e.Run(ctx, initial, temps, 5, 1, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(4))
		Expect(initial.Equal(before)).To(BeTrue())

		for i, res := range results {
			Expect(res.Snapshots).To(HaveLen(10))
			Expect(res.Final).NotTo(BeIdenticalTo(initial))

			solo, err := ising.RunTempSequence(ctx, before.Clone(), temps, 5, 1, 0, ising.NewSource(100+int64(i)))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Final.Equal(solo.Final)).To(BeTrue(), "run %d", i)
			Expect(res.Energies).To(Equal(solo.Energies))
		}
	})

	It("honours a worker limit", func() {
		initial := mustRandom(4, 4, 2)
		e := &ising.Ensemble{Runs: 5, SeedStart: 7, Workers: 2}
		results, err := e.Run(ctx, initial, temps, 2, 1, 0, ising.WithoutSnapshots())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(5))
		for _, res := range results {
			Expect(res.Len()).To(Equal(4))
		}
	})

	It("fails when a run fails", func() {
		initial := mustRandom(4, 4, 2)
		_, err := ising.NewEnsemble(3, 1).Run(ctx, initial, []float64{1, 0}, 2, 1, 0)
		Expect(err).To(MatchError(ising.ErrInvalidTemperature))
	})

	It("needs at least one run", func() {
		initial := mustRandom(2, 2, 2)
		_, err := ising.NewEnsemble(0, 1).Run(ctx, initial, temps, 1, 1, 0)
		Expect(err).To(MatchError(ising.ErrInvalidEnsemble))
	})
})
