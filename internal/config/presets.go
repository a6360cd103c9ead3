package config

import "sort"

// CriticalTemp is the exact Onsager transition temperature of the square
// lattice ferromagnet with J = 1.
const CriticalTemp = 2.269185314213022

var Presets = map[string]*Config{
	"critical": {
		Width: 128, Height: 128, NCycles: 200,
		StartTemp: CriticalTemp, EndTemp: CriticalTemp, NTemps: 1,
		SpinInteraction: 1, Init: InitRandom, Output: "critical.gif", FrameSize: 512,
	},
	"cold": {
		Width: 64, Height: 64, NCycles: 100,
		StartTemp: 1.0, EndTemp: 1.0, NTemps: 1,
		SpinInteraction: 1, Init: InitRandom, Output: "cold.gif", FrameSize: 384,
	},
	"hot": {
		Width: 64, Height: 64, NCycles: 100,
		StartTemp: 5.0, EndTemp: 5.0, NTemps: 1,
		SpinInteraction: 1, Init: InitUp, Output: "hot.gif", FrameSize: 384,
	},
	"anneal": {
		Width: 100, Height: 100, NCycles: 50,
		StartTemp: 4.0, EndTemp: 0.5, NTemps: 20,
		SpinInteraction: 1, Init: InitRandom, Output: "anneal.gif", FrameSize: 400,
	},
	"field": {
		Width: 64, Height: 64, NCycles: 100,
		StartTemp: 2.0, EndTemp: 2.0, NTemps: 1,
		SpinInteraction: 1, ExternalField: 0.5, Init: InitDown, Output: "field.gif", FrameSize: 384,
	},
	"antiferro": {
		Width: 64, Height: 64, NCycles: 100,
		StartTemp: 1.0, EndTemp: 1.0, NTemps: 1,
		SpinInteraction: -1, Init: InitRandom, Output: "antiferro.gif", FrameSize: 384,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
