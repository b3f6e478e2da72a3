package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpGroup struct {
	title    string
	bindings []key.Binding
}

// helpGroups lists the bindings shown in the overlay, by screen.
func (k keyMap) helpGroups() []helpGroup {
	return []helpGroup{
		{"Screens", []key.Binding{k.NextScreen, k.PrevScreen, k.Escape, k.SaveStartup}},
		{"Home", []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Dot, k.MoreHours, k.LessHours, k.Toggle}},
		{"Forms", []key.Binding{k.Confirm, k.Back}},
		{"Dashboard", []key.Binding{k.CycleRange}},
		{"General", []key.Binding{k.CycleTheme, k.Help, k.Quit}},
	}
}

// renderHelp renders the help overlay centred over the screen.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))

	for _, g := range m.keys.helpGroups() {
		b.WriteString("\n\n")
		b.WriteString(styles.AccentText.Bold(true).Render(g.title))
		for _, kb := range g.bindings {
			h := kb.Help()
			b.WriteString("\n")
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(42)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}
