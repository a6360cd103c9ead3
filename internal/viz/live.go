package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/lattice"
)

const (
	historyCapacity = 300
	tempStep        = 0.1
	fieldStep       = 0.1
	// lattices wider than this start in braille mode
	maxBlockCols = 96
)

type TickMsg time.Time

type Options struct {
	SweepsPerTick int
	Interval      time.Duration
	Theme         string
	Braille       bool
}

func DefaultOptions() Options {
	return Options{SweepsPerTick: 1, Interval: time.Second / 20, Theme: ThemeUpDown.Name}
}

// Model runs sweeps on a lattice it owns and renders it with live stats.
type Model struct {
	lat           *lattice.Lattice
	initial       *lattice.Lattice
	params        ising.Params
	initialParams ising.Params
	seed          int64
	rng           ising.Source
	opts          Options
	sweeps        int
	last          ising.SweepResult
	energyHistory []float64
	magHistory    []float64
	running       bool
	braille       bool
	showHelp      bool
	theme         int
	canvas        *Canvas
	err           error
}

// NewModel takes ownership of l. Reset restores l as it was here and
// re-seeds the generator with seed.
func NewModel(l *lattice.Lattice, p ising.Params, seed int64, opts Options) Model {
	if opts.SweepsPerTick <= 0 {
		opts.SweepsPerTick = 1
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultOptions().Interval
	}

	_, theme := GetTheme(opts.Theme)

	m := Model{
		lat:           l,
		initial:       l.Clone(),
		params:        p,
		initialParams: p,
		seed:          seed,
		rng:           ising.NewSource(seed),
		opts:          opts,
		running:       true,
		braille:       opts.Braille || l.Cols() > maxBlockCols,
		theme:         theme,
		canvas:        CanvasFor(l),
		energyHistory: make([]float64, 0, historyCapacity),
		magHistory:    make([]float64, 0, historyCapacity),
	}
	m.refresh()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the simulation on every tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
			}
		case "r":
			m.reset()
		case "up", "k":
			m.adjustTemp(tempStep)
		case "down", "j":
			m.adjustTemp(-tempStep)
		case "right", "l":
			m.adjustField(fieldStep)
		case "left", "h":
			m.adjustField(-fieldStep)
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		case "v":
			m.braille = !m.braille
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	for i := 0; i < m.opts.SweepsPerTick; i++ {
		sr, err := ising.Sweep(m.lat, m.params, m.rng)
		if err != nil {
			m.err = err
			m.running = false
			return
		}
		m.sweeps++
		m.last = sr
		m.record(sr.Energy, sr.Magnetization)
	}
}

func (m *Model) record(energy float64, mag int) {
	n := float64(m.lat.Size())
	m.energyHistory = appendCapped(m.energyHistory, energy/n)
	m.magHistory = appendCapped(m.magHistory, float64(mag)/n)
}

func appendCapped(s []float64, v float64) []float64 {
	s = append(s, v)
	if len(s) > historyCapacity {
		s = s[1:]
	}
	return s
}

// refresh recomputes the observables after the lattice or the couplings
// changed outside a sweep.
func (m *Model) refresh() {
	m.last = ising.SweepResult{
		Energy:        ising.Energy(m.lat, m.params.J, m.params.H),
		Magnetization: ising.Magnetization(m.lat),
	}
}

// adjustTemp steps T by d, skipping over zero.
func (m *Model) adjustTemp(d float64) {
	t := math.Round((m.params.T+d)*1e6) / 1e6
	if t == 0 {
		t = d
	}
	m.params.T = t
	m.err = nil
}

func (m *Model) adjustField(d float64) {
	m.params.H = math.Round((m.params.H+d)*1e6) / 1e6
	m.refresh()
}

// reset restores the initial lattice, parameters and generator.
func (m *Model) reset() {
	_ = m.lat.CopyFrom(m.initial)
	m.params = m.initialParams
	m.rng = ising.NewSource(m.seed)
	m.sweeps = 0
	m.energyHistory = m.energyHistory[:0]
	m.magHistory = m.magHistory[:0]
	m.err = nil
	m.refresh()
}

func (m Model) Sweeps() int               { return m.sweeps }
func (m Model) Params() ising.Params      { return m.params }
func (m Model) Running() bool             { return m.running }
func (m Model) Lattice() *lattice.Lattice { return m.lat }
func (m Model) Theme() Theme              { return Themes[m.theme] }
func (m Model) Err() error                { return m.err }

// View renders the lattice next to the stats panel.
func (m Model) View() string {
	theme := Themes[m.theme]

	var latticeView string
	if m.braille {
		m.canvas.DrawLattice(m.lat)
		latticeView = lipgloss.NewStyle().Foreground(theme.Up).Render(m.canvas.String())
	} else {
		latticeView = renderBlocks(m.lat, theme)
	}

	var s strings.Builder
	title := fmt.Sprintf("ISING %dx%d", m.lat.Rows(), m.lat.Cols())
	s.WriteString(headerStyle.Foreground(theme.Accent).Render(title) + "\n")

	status := StatusRunning.Render("RUNNING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}
	s.WriteString(status + "\n\n")
	if m.err != nil {
		s.WriteString(StatusPaused.Render(m.err.Error()) + "\n\n")
	}

	n := float64(m.lat.Size())
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Sweeps", fmt.Sprintf("%d", m.sweeps))
	row("Temperature", fmt.Sprintf("%.3f", m.params.T))
	row("Field", fmt.Sprintf("%.3f", m.params.H))
	row("Coupling", fmt.Sprintf("%.3f", m.params.J))
	row("Energy/site", fmt.Sprintf("%.4f", m.last.Energy/n))
	row("Mag/site", fmt.Sprintf("%+.4f", float64(m.last.Magnetization)/n))
	s.WriteString(labelStyle.Render("Acceptance") + ProgressBar(float64(m.last.Accepted)/n, 20) + "\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(5), asciigraph.Width(36), asciigraph.Caption("Energy per site"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString(labelStyle.Render("Magnetization") + Sparkline(m.magHistory, 28) + "\n")

	s.WriteString(helpStyle.Foreground(theme.Muted).Render("SP:Pause N:Step R:Reset Q:Quit\n↑↓:Temp ←→:Field T:Theme V:View ?:Help"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(latticeView), statsStyle.Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

const helpText = `
  Space      pause or resume
  N          single sweep while paused
  R          reset lattice, parameters and seed
  Up/Down    temperature +/- 0.1 (never 0)
  Left/Right field +/- 0.1
  T          cycle colour themes
  V          toggle block and braille view
  Q          quit
`

// renderBlocks draws two lattice rows per terminal line with upper half
// blocks, top row in the foreground and bottom row in the background.
func renderBlocks(l *lattice.Lattice, theme Theme) string {
	color := func(s lattice.Spin) lipgloss.Color {
		if s == lattice.Up {
			return theme.Up
		}
		return theme.Down
	}

	var b strings.Builder
	for r := 0; r < l.Rows(); r += 2 {
		for c := 0; c < l.Cols(); c++ {
			style := lipgloss.NewStyle().Foreground(color(l.At(r, c)))
			if r+1 < l.Rows() {
				style = style.Background(color(l.At(r+1, c)))
			}
			b.WriteString(style.Render("▀"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
