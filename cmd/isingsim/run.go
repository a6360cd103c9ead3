package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/isingsim/internal/config"
	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/lattice"
	"github.com/san-kum/isingsim/internal/metrics"
	"github.com/san-kum/isingsim/internal/render"
	"github.com/san-kum/isingsim/internal/storage"
)

func runSimulation(cmd *cobra.Command, flags *config.Config) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	rng := ising.NewSource(cfg.Seed)
	l, err := cfg.InitLattice(rng)
	if err != nil {
		return err
	}

	ms := metrics.Defaults()
	if cfg.IsSequence() {
		ms = metrics.SequenceDefaults()
	}
	opts := []ising.Option{ising.WithObserver(metrics.Observer(ms...))}
	if verbose {
		opts = append(opts, ising.WithObserver(progressObserver()))
	}
	if cfg.Output == "" {
		opts = append(opts, ising.WithoutSnapshots())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	temps := cfg.Temperatures()
	logger.Info("running simulation",
		"size", fmt.Sprintf("%dx%d", cfg.Height, cfg.Width),
		"ncycles", cfg.NCycles,
		"temps", len(temps),
		"seed", cfg.Seed)
	start := time.Now()

	var res *ising.Result
	if cfg.IsSequence() {
		res, err = ising.RunTempSequence(ctx, l, temps, cfg.NCycles, cfg.SpinInteraction, cfg.ExternalField, rng, opts...)
	} else {
		p := ising.Params{J: cfg.SpinInteraction, H: cfg.ExternalField, T: cfg.StartTemp}
		res, err = ising.Run(ctx, l, cfg.NCycles, p, rng, opts...)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID := ""
	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err = st.Save(runMetadata(cfg, res, ms, elapsed), res)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
	}

	if cfg.Output != "" {
		if err := writeAnimation(cfg, res); err != nil {
			return err
		}
		logger.Info("wrote animation", "path", cfg.Output, "frames", max(len(res.Snapshots), 1))
	}

	fmt.Printf("--- %.3f seconds ---\n", elapsed.Seconds())
	if runID != "" {
		fmt.Printf("run id: %s\n", runID)
	}
	fmt.Printf("sweeps: %d\n", res.Len())
	printMetrics(metrics.Values(ms))
	if cfg.IsSequence() {
		return printSummary(metrics.Summarize(&res.Trace, 0))
	}
	return nil
}

// runMetadata describes a finished run for storage. Schedules carry their
// fluctuation observables per temperature in Summaries.
func runMetadata(cfg *config.Config, res *ising.Result, ms []metrics.Metric, elapsed time.Duration) storage.RunMetadata {
	meta := storage.RunMetadata{
		Seed:            cfg.Seed,
		NCycles:         cfg.NCycles,
		Temperatures:    cfg.Temperatures(),
		SpinInteraction: cfg.SpinInteraction,
		ExternalField:   cfg.ExternalField,
		Init:            cfg.Init,
		Elapsed:         elapsed.Seconds(),
		Metrics:         metrics.Values(ms),
	}
	if cfg.IsSequence() {
		meta.Summaries = metrics.Summarize(&res.Trace, 0)
	}
	return meta
}

// writeAnimation encodes the snapshots, or the untouched lattice when no
// sweep ran.
func writeAnimation(cfg *config.Config, res *ising.Result) error {
	frames := res.Snapshots
	if len(frames) == 0 {
		frames = []*lattice.Lattice{res.Final}
	}

	opts := render.DefaultAnimationOptions()
	if cfg.FrameSize > 0 {
		opts.Width = cfg.FrameSize
		opts.Height = max(1, cfg.FrameSize*cfg.Height/cfg.Width)
	}
	return render.AnimateFile(cfg.Output, frames, opts)
}

func progressObserver() ising.Observer {
	return ising.ObserverFunc(func(_ *lattice.Lattice, s ising.SweepStats) {
		logger.Debug("cycle",
			"cycle", s.Cycle,
			"temp", s.Temperature,
			"energy", s.Energy,
			"magnetization", s.Magnetization,
			"accepted", s.Accepted)
	})
}

func printMetrics(vals map[string]float64) {
	names := make([]string, 0, len(vals))
	for name := range vals {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println(titleStyle.Render("metrics"))
	for _, name := range names {
		fmt.Printf("  %-28s %.6f\n", name, vals[name])
	}
}
