package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/lattice"
)

const (
	DefaultWidth     = 100
	DefaultHeight    = 100
	DefaultNCycles   = 100
	DefaultTemp      = 1.0
	DefaultNTemps    = 20
	DefaultJ         = 1.0
	DefaultOutput    = "run_animation.gif"
	DefaultFrameSize = 0
)

const (
	InitRandom = "random"
	InitUp     = "up"
	InitDown   = "down"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	NCycles         int     `yaml:"ncycles"`
	StartTemp       float64 `yaml:"start_temp"`
	EndTemp         float64 `yaml:"end_temp"`
	NTemps          int     `yaml:"ntemps"`
	SpinInteraction float64 `yaml:"spin_interaction"`
	ExternalField   float64 `yaml:"external_field"`
	Seed            int64   `yaml:"seed"`
	Init            string  `yaml:"init"`
	Output          string  `yaml:"output"`
	// FrameSize is the GIF edge in pixels; zero keeps one pixel per spin.
	FrameSize int `yaml:"frame_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		NCycles:         DefaultNCycles,
		StartTemp:       DefaultTemp,
		EndTemp:         DefaultTemp,
		NTemps:          DefaultNTemps,
		SpinInteraction: DefaultJ,
		Init:            InitRandom,
		Output:          DefaultOutput,
		FrameSize:       DefaultFrameSize,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base, so keys missing from the
// file keep the base values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the settings a run cannot start without.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: lattice %dx%d", ErrInvalidConfig, c.Height, c.Width)
	}
	if c.NCycles < 0 {
		return fmt.Errorf("%w: ncycles %d", ErrInvalidConfig, c.NCycles)
	}
	if c.FrameSize < 0 {
		return fmt.Errorf("%w: frame_size %d", ErrInvalidConfig, c.FrameSize)
	}
	if c.IsSequence() && c.NTemps < 1 {
		return fmt.Errorf("%w: ntemps %d", ErrInvalidConfig, c.NTemps)
	}
	switch c.Init {
	case InitRandom, InitUp, InitDown:
	default:
		return fmt.Errorf("%w: init %q", ErrInvalidConfig, c.Init)
	}
	for _, t := range c.Temperatures() {
		if t == 0 || math.IsNaN(t) {
			return fmt.Errorf("%w: temperature %g", ErrInvalidConfig, t)
		}
	}
	return nil
}

// IsSequence reports whether the config describes a temperature schedule
// rather than a single fixed-temperature run.
func (c *Config) IsSequence() bool {
	return c.StartTemp != c.EndTemp
}

// Temperatures returns the schedule: the single temperature for a fixed run,
// otherwise NTemps evenly spaced values from StartTemp to EndTemp.
func (c *Config) Temperatures() []float64 {
	if !c.IsSequence() {
		return []float64{c.StartTemp}
	}
	return ising.Linspace(c.StartTemp, c.EndTemp, c.NTemps)
}

// InitLattice builds the starting lattice named by Init.
func (c *Config) InitLattice(rng lattice.Float64Source) (*lattice.Lattice, error) {
	switch c.Init {
	case InitUp:
		return lattice.Uniform(c.Height, c.Width, lattice.Up)
	case InitDown:
		return lattice.Uniform(c.Height, c.Width, lattice.Down)
	case InitRandom, "":
		return lattice.Random(c.Height, c.Width, rng)
	default:
		return nil, fmt.Errorf("%w: init %q", ErrInvalidConfig, c.Init)
	}
}
