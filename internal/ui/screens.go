package ui

import "strings"

// Screen identifies a top-level page.
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenDashboard
	ScreenOnboarding
	ScreenLogin
	ScreenPrivacy
	ScreenTerms
	ScreenNotFound
)

// navScreens are reachable with tab; ScreenNotFound is not.
var navScreens = []Screen{
	ScreenLanding,
	ScreenDashboard,
	ScreenOnboarding,
	ScreenLogin,
	ScreenPrivacy,
	ScreenTerms,
}

var screenNames = map[Screen]string{
	ScreenLanding:    "landing",
	ScreenDashboard:  "dashboard",
	ScreenOnboarding: "onboarding",
	ScreenLogin:      "login",
	ScreenPrivacy:    "privacy",
	ScreenTerms:      "terms",
	ScreenNotFound:   "not-found",
}

func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return "unknown"
}

// Title is the label shown in the header tabs.
func (s Screen) Title() string {
	switch s {
	case ScreenLanding:
		return "Home"
	case ScreenDashboard:
		return "Dashboard"
	case ScreenOnboarding:
		return "Get started"
	case ScreenLogin:
		return "Log in"
	case ScreenPrivacy:
		return "Privacy"
	case ScreenTerms:
		return "Terms"
	default:
		return "404"
	}
}

// ParseScreen maps a --screen value to a Screen. Empty means landing;
// anything unrecognised yields ScreenNotFound and false.
func ParseScreen(name string) (Screen, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ScreenLanding, true
	}
	for _, s := range navScreens {
		if screenNames[s] == name {
			return s, true
		}
	}
	return ScreenNotFound, false
}

// ScreenNames lists the accepted --screen values.
func ScreenNames() []string {
	out := make([]string, 0, len(navScreens))
	for _, s := range navScreens {
		out = append(out, screenNames[s])
	}
	return out
}

func nextScreen(s Screen, step int) Screen {
	idx := 0
	for i, n := range navScreens {
		if n == s {
			idx = i
			break
		}
	}
	n := len(navScreens)
	return navScreens[((idx+step)%n+n)%n]
}
