package ising

import (
	"math"

	"github.com/san-kum/isingsim/internal/lattice"
)

// Params holds the Hamiltonian couplings and the bath temperature.
type Params struct {
	J float64 // spin interaction; > 0 ferromagnetic, < 0 antiferromagnetic
	H float64 // uniform external field
	T float64 // temperature; must be non-zero for a sweep
}

// Validate rejects temperatures the acceptance test cannot divide by.
func (p Params) Validate() error {
	if p.T == 0 || math.IsNaN(p.T) {
		return &TemperatureError{Index: -1, Temperature: p.T}
	}
	return nil
}

// SweepResult is the running state after one sweep.
type SweepResult struct {
	Energy        float64
	Magnetization int
	Accepted      int
}

// SweepStats is reported to observers after every sweep of a run.
type SweepStats struct {
	Cycle         int // zero-based, counted across a whole sequence
	Temperature   float64
	Energy        float64
	Magnetization int
	Accepted      int
	Sites         int
}

type Observer interface {
	OnSweep(l *lattice.Lattice, s SweepStats)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(l *lattice.Lattice, s SweepStats)

func (f ObserverFunc) OnSweep(l *lattice.Lattice, s SweepStats) { f(l, s) }

// Trace holds the per-sweep observables of a run. All series are indexed by
// sweep and have equal length.
type Trace struct {
	Sites          int
	Temperatures   []float64
	Energies       []float64
	Magnetizations []int
	Accepted       []int
}

// Len returns the number of recorded sweeps.
func (t *Trace) Len() int { return len(t.Energies) }

// AcceptanceRate returns the fraction of proposed flips that were accepted.
func (t *Trace) AcceptanceRate() float64 {
	if t.Sites == 0 || len(t.Accepted) == 0 {
		return 0
	}
	total := 0
	for _, a := range t.Accepted {
		total += a
	}
	return float64(total) / float64(len(t.Accepted)*t.Sites)
}

// Stats returns the observer view of sweep i.
func (t *Trace) Stats(i int) SweepStats {
	return SweepStats{
		Cycle:         i,
		Temperature:   t.Temperatures[i],
		Energy:        t.Energies[i],
		Magnetization: t.Magnetizations[i],
		Accepted:      t.Accepted[i],
		Sites:         t.Sites,
	}
}

func (t *Trace) append(temp float64, sr SweepResult) {
	t.Temperatures = append(t.Temperatures, temp)
	t.Energies = append(t.Energies, sr.Energy)
	t.Magnetizations = append(t.Magnetizations, sr.Magnetization)
	t.Accepted = append(t.Accepted, sr.Accepted)
}

// Result is the outcome of Run or RunTempSequence. Final is the lattice the
// caller passed in; Snapshots are deep copies taken after each sweep.
type Result struct {
	Final     *lattice.Lattice
	Snapshots []*lattice.Lattice
	Trace
}

func newResult(l *lattice.Lattice, capacity int, snapshots bool) *Result {
	r := &Result{
		Final: l,
		Trace: Trace{
			Sites:          l.Size(),
			Temperatures:   make([]float64, 0, capacity),
			Energies:       make([]float64, 0, capacity),
			Magnetizations: make([]int, 0, capacity),
			Accepted:       make([]int, 0, capacity),
		},
	}
	if snapshots {
		r.Snapshots = make([]*lattice.Lattice, 0, capacity)
	} else {
		r.Snapshots = []*lattice.Lattice{}
	}
	return r
}

type runConfig struct {
	observers []Observer
	snapshots bool
}

// Option configures Run and RunTempSequence.
type Option func(*runConfig)

// WithObserver registers an observer called after every sweep.
func WithObserver(o Observer) Option {
	return func(c *runConfig) { c.observers = append(c.observers, o) }
}

// WithoutSnapshots skips the per-sweep lattice copies. The trace series are
// still recorded.
func WithoutSnapshots() Option {
	return func(c *runConfig) { c.snapshots = false }
}

func buildConfig(opts []Option) runConfig {
	cfg := runConfig{snapshots: true}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
