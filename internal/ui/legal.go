package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/pulse/internal/content"
)

// legalChrome is the rows taken by the header, footer and padding.
const legalChrome = 6

// setLegal loads a document into the scrollable legal viewport.
func (m *Model) setLegal(doc content.Document) {
	if m.legal.Width == 0 {
		m.legal = viewport.New(80, 20)
	}
	m.resizeLegal()
	m.legal.SetContent(ansi.Wordwrap(doc.Text(), max(m.legal.Width-2, 20), ""))
	m.legal.GotoTop()
}

func (m *Model) resizeLegal() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	if m.legal.Width == 0 {
		m.legal = viewport.New(m.width-4, max(m.height-legalChrome, 3))
		return
	}
	m.legal.Width = m.width - 4
	m.legal.Height = max(m.height-legalChrome, 3)
}

func (m Model) renderLegal() string {
	styles := m.theme.Styles()
	return m.legal.View() + "\n" +
		styles.FaintText.Render("j/k scroll · pgup/pgdown page")
}
