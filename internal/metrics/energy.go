package metrics

import "github.com/san-kum/isingsim/internal/ising"

// MeanEnergy is the average energy per site.
type MeanEnergy struct {
	name string
	m    moments
}

func NewMeanEnergy() *MeanEnergy {
	return &MeanEnergy{name: "energy_per_site"}
}

func (e *MeanEnergy) Name() string { return e.name }

func (e *MeanEnergy) Observe(s ising.SweepStats) {
	if s.Sites == 0 {
		return
	}
	e.m.add(s.Energy / float64(s.Sites))
}

func (e *MeanEnergy) Value() float64 { return e.m.mean() }
func (e *MeanEnergy) Reset()         { e.m.reset() }

// SpecificHeat is the energy fluctuation per site, N*var(E/N)/T^2, which
// equals var(E)/(N*T^2). A sweep at a new temperature restarts the
// accumulation, so over a schedule the value describes the last block only.
type SpecificHeat struct {
	name  string
	m     moments
	sites int
	temp  float64
}

func NewSpecificHeat() *SpecificHeat {
	return &SpecificHeat{name: "specific_heat"}
}

func (c *SpecificHeat) Name() string { return c.name }

func (c *SpecificHeat) Observe(s ising.SweepStats) {
	if s.Sites == 0 {
		return
	}
	if s.Temperature != c.temp {
		c.m.reset()
	}
	c.m.add(s.Energy / float64(s.Sites))
	c.sites = s.Sites
	c.temp = s.Temperature
}

func (c *SpecificHeat) Value() float64 {
	if c.m.samples < 2 || c.temp == 0 {
		return 0
	}
	return float64(c.sites) * c.m.variance() / (c.temp * c.temp)
}

func (c *SpecificHeat) Reset() {
	c.m.reset()
	c.sites = 0
	c.temp = 0
}
