package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	NextScreen  key.Binding
	PrevScreen  key.Binding
	Escape      key.Binding
	SaveStartup key.Binding

	// Section navigation
	Up   key.Binding
	Down key.Binding

	// Carousel and rotator
	Prev key.Binding
	Next key.Binding
	Dot  key.Binding

	// ROI calculator
	MoreHours key.Binding
	LessHours key.Binding

	// Lists and forms
	Toggle  key.Binding
	Confirm key.Binding
	Back    key.Binding

	// Dashboard
	CycleRange key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		NextScreen: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next screen"),
		),
		PrevScreen: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous screen"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Home"),
		),
		SaveStartup: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "Open here next time"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Previous section"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Next section"),
		),

		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Previous slide"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Next slide"),
		),
		Dot: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Jump to slide"),
		),

		MoreHours: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "More hours"),
		),
		LessHours: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Fewer hours"),
		),

		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle answer or billing"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "Back"),
		),

		CycleRange: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Cycle time range"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextScreen, k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextScreen, k.PrevScreen, k.Escape},
		{k.Up, k.Down, k.Prev, k.Next, k.Dot},
		{k.MoreHours, k.LessHours, k.Toggle, k.Confirm, k.Back},
		{k.CycleRange},
		{k.CycleTheme, k.SaveStartup, k.Help, k.Quit},
	}
}

// digit returns the 0-based slide index for a 1-9 key.
func digit(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
