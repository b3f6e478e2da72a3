package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pulse/internal/revenue"
)

// Onboarding steps. Nothing entered here leaves the process.
const (
	stepPlatforms = iota
	stepGoal
	stepClient
	stepDone
	stepCount
)

var goalPresets = []int{5000, 10000, 20000}

var presetKeys = map[string]int{"f1": 0, "f2": 1, "f3": 2}

type onboardingState struct {
	step     int
	cursor   int
	selected map[string]bool

	goal         textinput.Model
	clientName   textinput.Model
	clientValue  textinput.Model
	clientFocus  int
	clientsAdded int
}

func newOnboardingState() onboardingState {
	goal := textinput.New()
	goal.Placeholder = "10,000"
	goal.Prompt = "$ "
	goal.CharLimit = 9
	goal.Validate = digitsOnly

	name := textinput.New()
	name.Placeholder = "Acme Design Co."
	name.CharLimit = 60

	value := textinput.New()
	value.Placeholder = "$2,500"
	value.CharLimit = 12

	return onboardingState{
		selected:    make(map[string]bool),
		goal:        goal,
		clientName:  name,
		clientValue: value,
	}
}

func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("digits only")
		}
	}
	return nil
}

// editing reports whether a text field has the keyboard.
func (s onboardingState) editing() bool {
	return s.step == stepGoal || s.step == stepClient
}

// focus gives the keyboard to the field of the current step.
func (s *onboardingState) focus() {
	s.goal.Blur()
	s.clientName.Blur()
	s.clientValue.Blur()
	switch s.step {
	case stepGoal:
		s.goal.Focus()
	case stepClient:
		if s.clientFocus == 0 {
			s.clientName.Focus()
		} else {
			s.clientValue.Focus()
		}
	}
}

func (s *onboardingState) setStep(step int) {
	s.step = min(max(step, 0), stepCount-1)
	s.focus()
}

// goalAmount returns the entered monthly goal, or 0.
func (s onboardingState) goalAmount() int {
	v, err := strconv.Atoi(s.goal.Value())
	if err != nil {
		return 0
	}
	return v
}

func (s onboardingState) selectedCount() int {
	n := 0
	for _, on := range s.selected {
		if on {
			n++
		}
	}
	return n
}

func (m *Model) handleOnboardingKey(msg tea.KeyMsg) tea.Cmd {
	s := &m.onboard
	k := m.keys

	switch s.step {
	case stepPlatforms:
		n := len(m.catalog.Platforms)
		switch {
		case key.Matches(msg, k.Prev), key.Matches(msg, k.Up):
			if n > 0 {
				s.cursor = (s.cursor + n - 1) % n
			}
		case key.Matches(msg, k.Next), key.Matches(msg, k.Down):
			if n > 0 {
				s.cursor = (s.cursor + 1) % n
			}
		case key.Matches(msg, k.Toggle):
			if n > 0 {
				id := m.catalog.Platforms[s.cursor].ID
				s.selected[id] = !s.selected[id]
			}
		case key.Matches(msg, k.Confirm):
			s.setStep(stepGoal)
		}
		return nil

	case stepGoal:
		switch {
		case key.Matches(msg, k.Confirm):
			s.setStep(stepClient)
			return nil
		case msg.Type == tea.KeyBackspace && s.goal.Value() == "":
			s.setStep(stepPlatforms)
			return nil
		}
		if i, ok := presetKeys[msg.String()]; ok {
			s.goal.SetValue(strconv.Itoa(goalPresets[i]))
			s.goal.CursorEnd()
			return nil
		}
		var cmd tea.Cmd
		s.goal, cmd = s.goal.Update(msg)
		return cmd

	case stepClient:
		switch {
		case key.Matches(msg, k.Confirm):
			if strings.TrimSpace(s.clientName.Value()) != "" {
				s.clientsAdded++
			}
			s.setStep(stepDone)
			return nil
		case msg.Type == tea.KeyDown, msg.Type == tea.KeyUp:
			s.clientFocus = 1 - s.clientFocus
			s.focus()
			return nil
		case msg.Type == tea.KeyBackspace && s.clientName.Value() == "" && s.clientValue.Value() == "":
			s.setStep(stepGoal)
			return nil
		}
		var cmd tea.Cmd
		if s.clientFocus == 0 {
			s.clientName, cmd = s.clientName.Update(msg)
		} else {
			s.clientValue, cmd = s.clientValue.Update(msg)
		}
		return cmd

	case stepDone:
		switch {
		case key.Matches(msg, k.Confirm):
			m.switchScreen(ScreenDashboard)
		case key.Matches(msg, k.Back):
			s.setStep(stepClient)
		}
	}
	return nil
}

func (m Model) renderOnboarding(width int) string {
	styles := m.theme.Styles()
	s := m.onboard

	var b strings.Builder
	progress := make([]string, stepCount)
	for i := range progress {
		if i <= s.step {
			progress[i] = styles.AccentText.Render("━━━━")
		} else {
			progress[i] = styles.FaintText.Render("━━━━")
		}
	}
	b.WriteString(strings.Join(progress, " "))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("Step %d of %d", s.step+1, stepCount)))
	b.WriteString("\n\n")

	switch s.step {
	case stepPlatforms:
		b.WriteString(styles.Title.Render("Connect your payment platforms"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("We'll automatically import your transactions. Select where you receive payments."))
		b.WriteString("\n\n")
		for i, p := range m.catalog.Platforms {
			box := "[ ]"
			if s.selected[p.ID] {
				box = "[x]"
			}
			line := box + " " + p.Name
			if i == s.cursor {
				b.WriteString(styles.Selected.Render("› " + line))
			} else {
				b.WriteString(styles.Text.Render("  " + line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("🔒 We use read-only connections. We can never move money or make changes."))
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("space select · enter continue"))

	case stepGoal:
		b.WriteString(styles.Title.Render("Set your monthly goal"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("This helps Pulse track your progress and predict if you're on track."))
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("Target monthly revenue"))
		b.WriteString("\n")
		b.WriteString(s.goal.View())
		b.WriteString("\n\n")
		presets := make([]string, len(goalPresets))
		for i, p := range goalPresets {
			presets[i] = styles.FaintText.Render(fmt.Sprintf("F%d", i+1)) + " " + styles.Text.Render(revenue.USD(p))
		}
		b.WriteString(strings.Join(presets, "   "))
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("You can change this anytime in settings."))

	case stepClient:
		b.WriteString(styles.Title.Render("Add your first client"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("We'll detect clients from your payments, but you can add one manually to start."))
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("Client name"))
		b.WriteString("\n")
		b.WriteString(s.clientName.View())
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("Average project value (optional)"))
		b.WriteString("\n")
		b.WriteString(s.clientValue.View())

	case stepDone:
		b.WriteString(styles.SuccessText.Render("✓ You're all set!"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Pulse is syncing your payments. Your dashboard will be ready in just a moment."))
		b.WriteString("\n\n")
		b.WriteString(styles.Text.Render(fmt.Sprintf("%d platforms selected", s.selectedCount())))
		b.WriteString("\n")
		if goal := s.goalAmount(); goal > 0 {
			b.WriteString(styles.Text.Render("Monthly goal " + revenue.USD(goal)))
			b.WriteString("\n")
		}
		b.WriteString(styles.Text.Render(fmt.Sprintf("%d clients added", s.clientsAdded)))
		b.WriteString("\n\n")
		b.WriteString(styles.AccentText.Bold(true).Render("enter  Go to Dashboard →"))
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("You're in good company: 2,400+ freelancers tracking revenue"))
	}

	return b.String()
}
