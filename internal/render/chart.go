package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/isingsim/internal/ising"
)

var ErrTooFewPoints = errors.New("render: a chart needs at least two points")

type Series struct {
	Name   string
	Values []float64
}

type ChartOptions struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
	Color  drawing.Color
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		XLabel: "MC cycle",
		Width:  800,
		Height: 400,
		Color:  drawing.Color{R: UpColor.R, G: UpColor.G, B: UpColor.B, A: 255},
	}
}

// Chart renders s against its index as a PNG line chart.
func Chart(w io.Writer, s Series, opts ChartOptions) error {
	if len(s.Values) < 2 {
		return ErrTooFewPoints
	}

	xs := make([]float64, len(s.Values))
	lo, hi := s.Values[0], s.Values[0]
	for i, v := range s.Values {
		xs[i] = float64(i)
		lo = min(lo, v)
		hi = max(hi, v)
	}

	yAxis := chart.YAxis{Name: opts.YLabel, Style: chart.Style{FontSize: 10.0}}
	if lo == hi {
		// flat traces (e.g. a frozen ground state) need an explicit range
		yAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		XAxis: chart.XAxis{
			Name:  opts.XLabel,
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: yAxis,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    s.Name,
				XValues: xs,
				YValues: s.Values,
				Style:   chart.Style{StrokeColor: opts.Color, StrokeWidth: 2.0},
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

// TraceCharts writes energy.png and magnetization.png for t into dir and
// returns their paths.
func TraceCharts(dir string, t *ising.Trace) ([]string, error) {
	if t.Len() < 2 {
		return nil, ErrTooFewPoints
	}

	mags := make([]float64, len(t.Magnetizations))
	for i, m := range t.Magnetizations {
		mags[i] = float64(m)
	}

	charts := []struct {
		file   string
		series Series
	}{
		{"energy.png", Series{Name: "Energy", Values: t.Energies}},
		{"magnetization.png", Series{Name: "Magnetization", Values: mags}},
	}

	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		opts := DefaultChartOptions()
		opts.Title = c.series.Name + " vs MC cycle"
		opts.YLabel = c.series.Name

		path := filepath.Join(dir, c.file)
		if err := writeChart(path, c.series, opts); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeChart(path string, s Series, opts ChartOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Chart(f, s, opts); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
