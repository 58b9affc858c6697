package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the live preview. Ink is used for the drawing itself.
type Theme struct {
	Name    string
	Ink     lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeInk = Theme{
		Name:    "ink",
		Ink:     lipgloss.Color("#e0e0e0"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	// The palette themes use the light end of the matching ramp so the
	// drawing reads on a dark terminal.
	ThemeBurg = Theme{
		Name:    "burg",
		Ink:     lipgloss.Color("#ffc6c4"),
		Accent:  lipgloss.Color("#cc607d"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Success: lipgloss.Color("#5fd068"),
		Warning: lipgloss.Color("#ffc048"),
		Error:   lipgloss.Color("#ff4757"),
	}

	ThemeTeal = Theme{
		Name:    "teal",
		Ink:     lipgloss.Color("#d1eeea"),
		Accent:  lipgloss.Color("#68abb8"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemePurp = Theme{
		Name:    "purp",
		Ink:     lipgloss.Color("#f3e0f7"),
		Accent:  lipgloss.Color("#9f82ce"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	CurrentTheme = ThemeInk

	Themes = []Theme{
		ThemeInk,
		ThemeBurg,
		ThemeTeal,
		ThemePurp,
	}
)

// GetTheme returns a theme by name, falling back to ink.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeInk
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// nextTheme returns the theme after current in Themes, wrapping around.
func nextTheme(current string) Theme {
	for i, t := range Themes {
		if t.Name == current {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
