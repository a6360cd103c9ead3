package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the lattice and the stats panel.
type Theme struct {
	Name   string
	Up     lipgloss.Color
	Down   lipgloss.Color
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeUpDown = Theme{
		Name:   "updown",
		Up:     lipgloss.Color("#8e82fe"), // periwinkle
		Down:   lipgloss.Color("#580f41"), // plum
		Accent: lipgloss.Color("#00ccff"),
		Muted:  lipgloss.Color("#666688"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Up:     lipgloss.Color("#ffffff"),
		Down:   lipgloss.Color("#222222"),
		Accent: lipgloss.Color("#0088ff"),
		Muted:  lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Up:     lipgloss.Color("#00a8cc"),
		Down:   lipgloss.Color("#001a33"),
		Accent: lipgloss.Color("#ffd700"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Up:     lipgloss.Color("#feca57"),
		Down:   lipgloss.Color("#2d1b2e"),
		Accent: lipgloss.Color("#ff6b6b"),
		Muted:  lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeUpDown,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme and its index in Themes by name, falling back
// to the default.
func GetTheme(name string) (Theme, int) {
	for i, t := range Themes {
		if t.Name == name {
			return t, i
		}
	}
	return ThemeUpDown, 0
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
