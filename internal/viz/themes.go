package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for reports and the explorer.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Label   lipgloss.Color
	Value   lipgloss.Color
	Unit    lipgloss.Color
	Border  lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeBlueprint = Theme{
		Name:    "blueprint",
		Title:   lipgloss.Color("#7fdbff"),
		Label:   lipgloss.Color("#8899aa"),
		Value:   lipgloss.Color("#ffffff"),
		Unit:    lipgloss.Color("#5588aa"),
		Border:  lipgloss.Color("#335577"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemeWorkshop = Theme{
		Name:    "workshop",
		Title:   lipgloss.Color("#ffb347"),
		Label:   lipgloss.Color("#a89984"),
		Value:   lipgloss.Color("#fbf1c7"),
		Unit:    lipgloss.Color("#928374"),
		Border:  lipgloss.Color("#504945"),
		Warning: lipgloss.Color("#fb4934"),
	}

	ThemeMono = Theme{
		Name:    "mono",
		Title:   lipgloss.Color("255"),
		Label:   lipgloss.Color("245"),
		Value:   lipgloss.Color("252"),
		Unit:    lipgloss.Color("240"),
		Border:  lipgloss.Color("240"),
		Warning: lipgloss.Color("255"),
	}

	CurrentTheme = ThemeBlueprint

	Themes = []Theme{
		ThemeBlueprint,
		ThemeWorkshop,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to blueprint.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeBlueprint
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = ThemeBlueprint
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
