package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/isingsim/internal/config"
	"github.com/san-kum/isingsim/internal/metrics"
	"github.com/san-kum/isingsim/internal/render"
	"github.com/san-kum/isingsim/internal/storage"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

// runID picks the explicit argument or falls back to the newest run.
func runID(st *storage.Store, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	id, err := st.Latest()
	if err != nil {
		return "", fmt.Errorf("no run id given: %w", err)
	}
	return id, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tSWEEPS\tTEMPS\tJ\tH\tSEED")

	for _, run := range runs {
		temps := "-"
		if n := len(run.Temperatures); n == 1 {
			temps = fmt.Sprintf("%.3f", run.Temperatures[0])
		} else if n > 1 {
			temps = fmt.Sprintf("%.3f..%.3f (%d)", run.Temperatures[0], run.Temperatures[n-1], n)
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%s\t%.3f\t%.3f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rows, run.Cols,
			run.Sweeps,
			temps,
			run.SpinInteraction,
			run.ExternalField,
			run.Seed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	id, err := runID(st, args)
	if err != nil {
		return err
	}

	tr, err := st.LoadTrace(id)
	if err != nil {
		return err
	}
	if tr.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	mags := make([]float64, tr.Len())
	for i, m := range tr.Magnetizations {
		mags[i] = float64(m)
	}

	fmt.Printf("run: %s\n", id)
	fmt.Printf("sweeps: %d\n\n", tr.Len())

	for _, p := range []struct {
		caption string
		data    []float64
	}{
		{"energy vs MC cycle", tr.Energies},
		{"magnetization vs MC cycle", mags},
	} {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func chartRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	id, err := runID(st, args)
	if err != nil {
		return err
	}
	dir, _ := cmd.Flags().GetString("dir")

	tr, err := st.LoadTrace(id)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	paths, err := render.TraceCharts(dir, tr)
	if err != nil {
		return err
	}
	for _, p := range paths {
		logger.Info("wrote chart", "path", p)
	}
	return nil
}

// output returns stdout for an empty path, otherwise a new file.
func output(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func exportCSV(cmd *cobra.Command, args []string) error {
	return export(cmd, args, (*storage.Store).ExportCSV)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return export(cmd, args, (*storage.Store).ExportJSON)
}

func export(cmd *cobra.Command, args []string, write func(*storage.Store, io.Writer, string) error) error {
	st := storage.New(dataDir)
	id, err := runID(st, args)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("output")

	w, err := output(path)
	if err != nil {
		return err
	}
	if err := write(st, w, id); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	if path != "" {
		logger.Info("exported", "run", id, "path", path)
	}
	return nil
}

func summarizeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	id, err := runID(st, args)
	if err != nil {
		return err
	}
	burnIn, _ := cmd.Flags().GetInt("burn-in")

	tr, err := st.LoadTrace(id)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("run " + id))
	return printSummary(metrics.Summarize(tr, burnIn))
}

func printSummary(rows []metrics.TemperatureSummary) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T\tSWEEPS\tE/N\t|M|/N\tCv\tCHI\tACCEPT\tTAU_E")
	for _, r := range rows {
		fmt.Fprintf(w, "%.4f\t%d\t%.5f\t%.5f\t%.5f\t%.5f\t%.4f\t%.2f\n",
			r.Temperature, r.Sweeps, r.Energy, r.AbsMagnetization,
			r.SpecificHeat, r.Susceptibility, r.Acceptance, r.EnergyTau)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tNCYCLES\tTEMPS\tJ\tH\tINIT")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		temps := fmt.Sprintf("%.3f", p.StartTemp)
		if p.IsSequence() {
			temps = fmt.Sprintf("%.3f..%.3f (%d)", p.StartTemp, p.EndTemp, p.NTemps)
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\t%.2f\t%.2f\t%s\n",
			name, p.Height, p.Width, p.NCycles, temps, p.SpinInteraction, p.ExternalField, p.Init)
	}
	return w.Flush()
}
