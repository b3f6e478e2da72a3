package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string // Outermost background
	Surface    string // Cards and panels
	SurfaceAlt string // Inactive previews, tracks

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string // Coral highlight used for active slides and counters
	Success string // Connected integrations, positive change
	Warning string
	Danger  string
	Info    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		ActiveCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	Title       lipgloss.Style

	// Components
	Header     lipgloss.Style
	Footer     lipgloss.Style
	Logo       lipgloss.Style
	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style
	Card       lipgloss.Style
	ActiveCard lipgloss.Style
	Selected   lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Pulse":    pulseTheme(),
	"Midnight": midnightTheme(),
}

var themeOrder = []string{"Pulse", "Midnight"}

// GetTheme returns a theme by name, falling back to Pulse.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return pulseTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func pulseTheme() Theme {
	// Marketing site palette: cream paper, ink text, coral accent
	return Theme{
		Name: "Pulse",

		Background: "#F5F2EA",
		Surface:    "#FFFFFF",
		SurfaceAlt: "#E9E7E2",

		Border:      "#CCD7E4",
		BorderFocus: "#FF9678",

		Text:    "#1A1A18",
		Muted:   "#6B6B66",
		Faint:   "#A3A29C",
		Accent:  "#FF9678",
		Success: "#5E8C3A",
		Warning: "#E8927C",
		Danger:  "#D64545",
		Info:    "#0075EB",
	}
}

func midnightTheme() Theme {
	return Theme{
		Name: "Midnight",

		Background: "#1A1A18",
		Surface:    "#24241F",
		SurfaceAlt: "#2E2E29",

		Border:      "#3B3B36",
		BorderFocus: "#FF9678",

		Text:    "#F5F2EA",
		Muted:   "#A3A29C",
		Faint:   "#6B6B66",
		Accent:  "#FF9678",
		Success: "#C8DFA8",
		Warning: "#F9D9C6",
		Danger:  "#FF6B6B",
		Info:    "#B8D4C8",
	}
}
