package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// logoMark is the heartbeat glyph drawn before the wordmark.
const logoMark = "∿"

// renderLogo draws the wordmark; the mark pulses once a second.
func (m Model) renderLogo(styles Styles) string {
	mark := styles.AccentText
	if m.clock.UnixMilli()%1000 >= 500 {
		mark = styles.FaintText
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		mark.Render(logoMark),
		" ",
		styles.Logo.Render("pulse"),
	)
}

// renderBadge shows the current nav badge label, faint while it fades.
func (m Model) renderBadge(styles Styles) string {
	badges := m.catalog.Badges
	if len(badges) == 0 {
		return ""
	}
	i := m.badge.Index
	if i < 0 || i >= len(badges) {
		i = 0
	}
	style := styles.AccentText
	if m.badges != nil && !m.badge.Visible {
		style = styles.FaintText
	}
	return style.Render("[" + badges[i] + "]")
}

// renderSplash spells out the wordmark letter by letter over the preloader
// delay, with an underline that fills alongside.
func (m Model) renderSplash() string {
	styles := m.theme.Styles()
	const word = "Pulse"
	p := m.preloader.Progress()

	shown := min(int(p*float64(len(word)+1)), len(word))
	letters := styles.Logo.Render(strings.Join(strings.Split(word[:shown], ""), " ")) +
		styles.FaintText.Render(strings.Repeat(" ·", len(word)-shown))
	bar := newProgress(m.theme, 2*len(word)-1)

	splash := lipgloss.JoinVertical(lipgloss.Center,
		letters,
		bar.ViewAs(p),
		"",
		styles.AccentText.Render(logoMark),
	)
	return styles.Background.Width(m.width).Height(m.height).Render(
		lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, splash),
	)
}
