package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/isingsim/internal/config"
	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/metrics"
)

func runEnsemble(cmd *cobra.Command, flags *config.Config) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}
	runs, _ := cmd.Flags().GetInt("runs")
	workers, _ := cmd.Flags().GetInt("workers")
	burnIn, _ := cmd.Flags().GetInt("burn-in")

	initial, err := cfg.InitLattice(ising.NewSource(cfg.Seed))
	if err != nil {
		return err
	}

	ens := ising.NewEnsemble(runs, cfg.Seed+1)
	ens.Workers = workers

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("running ensemble", "runs", runs, "workers", workers, "seed", cfg.Seed)
	start := time.Now()
	results, err := ens.Run(ctx, initial, cfg.Temperatures(), cfg.NCycles,
		cfg.SpinInteraction, cfg.ExternalField, ising.WithoutSnapshots())
	if err != nil {
		return err
	}
	logger.Info("ensemble done", "elapsed", time.Since(start).Round(time.Millisecond))

	perRun := make([][]metrics.TemperatureSummary, len(results))
	for i, res := range results {
		perRun[i] = metrics.Summarize(&res.Trace, burnIn)
	}
	return printEnsemble(perRun)
}

// printEnsemble reports the mean and standard error over runs of every
// per-temperature observable.
func printEnsemble(perRun [][]metrics.TemperatureSummary) error {
	if len(perRun) == 0 || len(perRun[0]) == 0 {
		fmt.Println("no sweeps recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T\tE/N\t|M|/N\tCv\tCHI\tACCEPT\tTAU_E")
	for b := range perRun[0] {
		pick := func(f func(metrics.TemperatureSummary) float64) string {
			vals := make([]float64, len(perRun))
			for i := range perRun {
				vals[i] = f(perRun[i][b])
			}
			mean, sem := meanSEM(vals)
			return fmt.Sprintf("%.5f ± %.5f", mean, sem)
		}
		fmt.Fprintf(w, "%.4f\t%s\t%s\t%s\t%s\t%s\t%s\n",
			perRun[0][b].Temperature,
			pick(func(s metrics.TemperatureSummary) float64 { return s.Energy }),
			pick(func(s metrics.TemperatureSummary) float64 { return s.AbsMagnetization }),
			pick(func(s metrics.TemperatureSummary) float64 { return s.SpecificHeat }),
			pick(func(s metrics.TemperatureSummary) float64 { return s.Susceptibility }),
			pick(func(s metrics.TemperatureSummary) float64 { return s.Acceptance }),
			pick(func(s metrics.TemperatureSummary) float64 { return s.EnergyTau }),
		)
	}
	return w.Flush()
}

func meanSEM(vals []float64) (float64, float64) {
	n := float64(len(vals))
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= n
	if len(vals) < 2 {
		return mean, 0
	}
	ss := 0.0
	for _, v := range vals {
		ss += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(ss/(n-1)) / math.Sqrt(n)
}
