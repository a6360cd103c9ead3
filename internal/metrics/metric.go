package metrics

import (
	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/lattice"
)

// Metric accumulates a scalar observable over the sweeps of a run.
type Metric interface {
	Name() string
	Observe(s ising.SweepStats)
	Value() float64
	Reset()
}

// Observer feeds every sweep of a run into the given metrics.
func Observer(ms ...Metric) ising.Observer {
	return ising.ObserverFunc(func(_ *lattice.Lattice, s ising.SweepStats) {
		for _, m := range ms {
			m.Observe(s)
		}
	})
}

// Defaults returns a fresh set of the standard observables.
func Defaults() []Metric {
	return []Metric{
		NewMeanEnergy(),
		NewMeanAbsMagnetization(),
		NewAcceptance(),
		NewSpecificHeat(),
		NewSusceptibility(),
	}
}

// SequenceDefaults returns the observables that stay meaningful when averaged
// across a temperature schedule. Fluctuation quantities for a schedule come
// from Summarize, one per temperature.
func SequenceDefaults() []Metric {
	return []Metric{
		NewMeanEnergy(),
		NewMeanAbsMagnetization(),
		NewAcceptance(),
	}
}

// Values collects the current value of each metric by name.
func Values(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// moments keeps running sums of a per-site observable x and x^2.
type moments struct {
	sum, sumSq float64
	samples    int
}

func (m *moments) add(x float64) {
	m.sum += x
	m.sumSq += x * x
	m.samples++
}

func (m *moments) mean() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *moments) variance() float64 {
	if m.samples == 0 {
		return 0
	}
	mean := m.mean()
	v := m.sumSq/float64(m.samples) - mean*mean
	if v < 0 {
		return 0
	}
	return v
}

func (m *moments) reset() { *m = moments{} }
