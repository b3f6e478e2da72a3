package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// chromeRows is the rows used by the header and footer around the body.
const chromeRows = 3

// renderMain composes header, the current screen and the footer.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	bodyHeight := max(m.height-chromeRows, 1)
	width := max(m.width-2, 20)
	body := lipgloss.NewStyle().
		Padding(0, 1).
		MaxHeight(bodyHeight).
		Render(m.renderBody(width))

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		lipgloss.PlaceVertical(bodyHeight, lipgloss.Top, body),
		m.renderFooter(),
	)
	return styles.Background.Width(m.width).Height(m.height).Render(view)
}

func (m Model) renderBody(width int) string {
	switch m.screen {
	case ScreenLanding:
		return m.renderLanding(width)
	case ScreenDashboard:
		return m.renderDashboard(width)
	case ScreenOnboarding:
		return m.renderOnboarding(width)
	case ScreenLogin:
		return m.renderLogin()
	case ScreenPrivacy, ScreenTerms:
		return m.renderLegal()
	default:
		return m.renderNotFound()
	}
}

// renderHeader renders the logo, screen tabs and theme name.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	compact := m.width < LayoutCompactWidth

	tabs := make([]string, 0, len(navScreens))
	for _, s := range navScreens {
		label := s.Title()
		if compact {
			label = truncate(label, 6)
		}
		if s == m.screen {
			tabs = append(tabs, styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, styles.Tab.Render(label))
		}
	}

	left := m.renderLogo(styles) + " " + m.renderBadge(styles) + "  " + strings.Join(tabs, "")
	right := styles.FaintText.Render(m.theme.Name)
	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right) - 2
	if gap < 1 {
		return styles.Header.Width(m.width).Render(ansi.Truncate(left, max(m.width-2, 1), "…"))
	}
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderFooter shows short help, or the latest notice when one is set.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	line := m.help.View(m.keys)
	if m.notice != "" {
		line = styles.AccentText.Render(m.notice) + "  " + line
	}
	return styles.Footer.Width(m.width).Render(ansi.Truncate(line, max(m.width-2, 1), "…"))
}

func (m Model) renderNotFound() string {
	styles := m.theme.Styles()
	msg := styles.Title.Render("404") + "\n\n" +
		styles.Text.Render("Page not found") + "\n" +
		styles.MutedText.Render("The screen you asked for doesn't exist.") + "\n\n" +
		styles.AccentText.Render("enter") + styles.FaintText.Render("  Back to home")
	return lipgloss.Place(max(m.width-2, 1), max(m.height-chromeRows, 1),
		lipgloss.Center, lipgloss.Center, msg)
}
