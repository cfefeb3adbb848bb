package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the panels and status line of the TUI. The braille
// canvas itself stays monochrome; segment colors only matter for the
// SVG export, which carries its own palette.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
}

var (
	ThemeOptics = Theme{
		Name:      "optics",
		Primary:   lipgloss.Color("86"),
		Secondary: lipgloss.Color("213"),
		Accent:    lipgloss.Color("220"),
		Text:      lipgloss.Color("252"),
		Muted:     lipgloss.Color("240"),
	}

	ThemePhosphor = Theme{
		Name:      "phosphor",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#88ff88"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
	}

	ThemePaper = Theme{
		Name:      "paper",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
	}

	Themes = []Theme{ThemeOptics, ThemePhosphor, ThemePaper}
)

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
