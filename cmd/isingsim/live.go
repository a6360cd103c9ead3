package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/isingsim/internal/config"
	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/viz"
)

var (
	liveCfg       = config.DefaultConfig()
	liveTemp      float64
	sweepsPerTick int
	frameRate     int
	themeName     string
	braille       bool
)

func addLiveFlags(cmd *cobra.Command) {
	liveCfg.Width, liveCfg.Height = 64, 32

	f := cmd.Flags()
	f.IntVarP(&liveCfg.Width, "width", "W", liveCfg.Width, "lattice width")
	f.IntVarP(&liveCfg.Height, "height", "H", liveCfg.Height, "lattice height")
	f.Float64Var(&liveTemp, "temp", config.CriticalTemp, "starting temperature")
	f.Float64Var(&liveCfg.SpinInteraction, "spin-interaction", liveCfg.SpinInteraction, "coupling J")
	f.Float64Var(&liveCfg.ExternalField, "field", liveCfg.ExternalField, "external field H")
	f.Int64Var(&liveCfg.Seed, "seed", 0, "random seed (0: time based)")
	f.StringVar(&liveCfg.Init, "init", liveCfg.Init, "initial lattice: random, up or down")
	f.IntVar(&sweepsPerTick, "sweeps-per-tick", 1, "sweeps between redraws")
	f.IntVar(&frameRate, "fps", 20, "frame rate")
	f.StringVar(&themeName, "theme", viz.ThemeUpDown.Name, "colour theme")
	f.BoolVar(&braille, "braille", false, "draw the lattice with braille dots")
}

func runLive(cmd *cobra.Command, args []string) error {
	liveCfg.StartTemp, liveCfg.EndTemp = liveTemp, liveTemp
	if liveCfg.Seed == 0 {
		liveCfg.Seed = time.Now().UnixNano()
	}
	if err := liveCfg.Validate(); err != nil {
		return err
	}

	l, err := liveCfg.InitLattice(ising.NewSource(liveCfg.Seed))
	if err != nil {
		return err
	}
	if frameRate <= 0 {
		frameRate = 20
	}

	p := ising.Params{J: liveCfg.SpinInteraction, H: liveCfg.ExternalField, T: liveTemp}
	model := viz.NewModel(l, p, liveCfg.Seed+1, viz.Options{
		SweepsPerTick: sweepsPerTick,
		Interval:      time.Second / time.Duration(frameRate),
		Theme:         themeName,
		Braille:       braille,
	})

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
