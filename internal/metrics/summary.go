package metrics

import "github.com/san-kum/isingsim/internal/ising"

// TemperatureSummary holds the equilibrium averages for one block of sweeps
// run at a single temperature.
type TemperatureSummary struct {
	Temperature      float64 `json:"temperature"`
	Sweeps           int     `json:"sweeps"`
	Energy           float64 `json:"energy_per_site"`
	AbsMagnetization float64 `json:"abs_magnetization_per_site"`
	SpecificHeat     float64 `json:"specific_heat"`
	Susceptibility   float64 `json:"susceptibility"`
	Acceptance       float64 `json:"acceptance_rate"`
	// EnergyTau is the integrated autocorrelation time of the energy.
	EnergyTau float64 `json:"energy_tau"`
}

// Summarize splits the trace into contiguous runs of equal temperature and
// averages each one, discarding the first burnIn sweeps of every block. A
// block no longer than burnIn reports Sweeps == 0 and zero averages.
func Summarize(t *ising.Trace, burnIn int) []TemperatureSummary {
	if burnIn < 0 {
		burnIn = 0
	}

	var out []TemperatureSummary
	for start := 0; start < t.Len(); {
		end := start + 1
		for end < t.Len() && t.Temperatures[end] == t.Temperatures[start] {
			end++
		}
		out = append(out, summarizeBlock(t, start, end, burnIn))
		start = end
	}
	return out
}

func summarizeBlock(t *ising.Trace, start, end, burnIn int) TemperatureSummary {
	energy := NewMeanEnergy()
	mag := NewMeanAbsMagnetization()
	cv := NewSpecificHeat()
	chi := NewSusceptibility()
	acc := NewAcceptance()
	obs := []Metric{energy, mag, cv, chi, acc}

	n := 0
	var energies []float64
	for i := start + burnIn; i < end; i++ {
		s := t.Stats(i)
		for _, m := range obs {
			m.Observe(s)
		}
		energies = append(energies, s.Energy)
		n++
	}

	return TemperatureSummary{
		Temperature:      t.Temperatures[start],
		Sweeps:           n,
		Energy:           energy.Value(),
		AbsMagnetization: mag.Value(),
		SpecificHeat:     cv.Value(),
		Susceptibility:   chi.Value(),
		Acceptance:       acc.Value(),
		EnergyTau:        IntegratedTime(energies),
	}
}
