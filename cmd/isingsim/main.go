package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/isingsim/internal/config"
)

var (
	dataDir string
	verbose bool
	noSave  bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "isingsim",
	})
)

// main registers the commands and exits with status 1 on any error,
// argument parsing included.
func main() {
	rootCmd := &cobra.Command{
		Use:           "isingsim",
		Short:         "2D Ising model Metropolis Monte Carlo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".isingsim", "run store directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging and per-cycle progress")

	runFlags := config.DefaultConfig()
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and write its animation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, runFlags)
		},
	}
	addConfigFlags(runCmd, runFlags)
	runCmd.Flags().StringVarP(&runFlags.Output, "output", "O", runFlags.Output, "animation output path (empty to skip)")
	runCmd.Flags().IntVar(&runFlags.FrameSize, "frame-size", runFlags.FrameSize, "animation width in pixels (0: one pixel per spin)")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run in the store")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot energy and magnetization in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotRun,
	}

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "write energy and magnetization PNG charts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  chartRun,
	}
	chartCmd.Flags().StringP("dir", "d", ".", "output directory")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the per-sweep trace as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringP("output", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringP("output", "o", "", "output file (default stdout)")

	summaryCmd := &cobra.Command{
		Use:   "summary [run_id]",
		Short: "per-temperature observables of a run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  summarizeRun,
	}
	summaryCmd.Flags().Int("burn-in", 0, "sweeps discarded at the start of each temperature")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a lattice evolve in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addLiveFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	ensembleFlags := config.DefaultConfig()
	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run independent seeds in parallel and average them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnsemble(cmd, ensembleFlags)
		},
	}
	addConfigFlags(ensembleCmd, ensembleFlags)
	ensembleCmd.Flags().Int("runs", 8, "number of independent seeds")
	ensembleCmd.Flags().Int("workers", 0, "concurrent runs (0: one per run)")
	ensembleCmd.Flags().Int("burn-in", 0, "sweeps discarded at the start of each temperature")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure sweep throughput over lattice sizes",
		Args:  cobra.NoArgs,
		RunE:  benchSweeps,
	}
	benchCmd.Flags().Int("sweeps", 50, "sweeps per size")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, chartCmd, exportCSVCmd, exportJSONCmd,
		summaryCmd, liveCmd, presetsCmd, ensembleCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
