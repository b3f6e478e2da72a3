package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginState is a form that goes nowhere: submitting only acknowledges.
type loginState struct {
	email    textinput.Model
	password textinput.Model
	focused  int
	message  string
}

func newLoginState() loginState {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "••••••••"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 120

	return loginState{email: email, password: password}
}

func (s *loginState) focus() {
	if s.focused == 0 {
		s.password.Blur()
		s.email.Focus()
	} else {
		s.email.Blur()
		s.password.Focus()
	}
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) tea.Cmd {
	s := &m.login
	switch {
	case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		s.focused = 1 - s.focused
		s.focus()
		return nil
	case key.Matches(msg, m.keys.Confirm):
		if s.focused == 0 {
			s.focused = 1
			s.focus()
			return nil
		}
		if strings.TrimSpace(s.email.Value()) == "" || s.password.Value() == "" {
			s.message = "Enter your email and password."
			return nil
		}
		s.message = "Welcome back! This preview has no accounts, so nothing was sent."
		return nil
	}

	s.message = ""
	var cmd tea.Cmd
	if s.focused == 0 {
		s.email, cmd = s.email.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return cmd
}

func (m Model) renderLogin() string {
	styles := m.theme.Styles()
	s := m.login

	var b strings.Builder
	b.WriteString(styles.Title.Render("Welcome back"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Log in to see where your money comes from."))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Email"))
	b.WriteString("\n")
	b.WriteString(s.email.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Password"))
	b.WriteString("\n")
	b.WriteString(s.password.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("up/down switch field · enter log in"))
	if s.message != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.AccentText.Render(s.message))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("By continuing you agree to our Terms and Privacy Policy."))

	form := styles.Card.Padding(1, 2).Render(b.String())
	if len(m.catalog.Testimonials) == 0 {
		return form
	}
	t := m.catalog.Testimonials[0]
	aside := styles.Title.Render("Grow your money.") + "\n\n" +
		styles.Text.Italic(true).Render("“"+t.Quote+"”") + "\n\n" +
		styles.Title.Render(t.Name) + "  " + styles.MutedText.Render(t.Role)
	return form + "\n\n" + styles.ActiveCard.Width(56).Padding(1, 2).Render(aside)
}
