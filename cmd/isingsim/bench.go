package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/isingsim/internal/config"
	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/lattice"
)

func benchSweeps(cmd *cobra.Command, args []string) error {
	sweeps, _ := cmd.Flags().GetInt("sweeps")
	sizes := []int{16, 32, 64, 128, 256}
	p := ising.Params{J: 1, H: 0, T: config.CriticalTemp}

	fmt.Printf("benchmarking %d sweeps at T=%.4f\n\n", sweeps, p.T)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tSWEEPS\tTIME\tSWEEPS/SEC\tSITES/SEC\tACCEPT")

	for _, n := range sizes {
		rng := ising.NewSource(42)
		l, err := lattice.Random(n, n, rng)
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := ising.Run(context.Background(), l, sweeps, p, rng, ising.WithoutSnapshots())
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		rate := float64(sweeps) / elapsed.Seconds()
		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.1f\t%.3g\t%.3f\n",
			n, n, sweeps, elapsed.Round(time.Microsecond), rate, rate*float64(n*n), res.AcceptanceRate())
	}

	return w.Flush()
}
