// Package prefs persists the two choices a Pulse user can make from inside
// the UI: the colour theme and the screen to open on. The file lives at
// ~/.config/pulse/prefs.toml and is rewritten whole on every change.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for Pulse.
type Prefs struct {
	Theme       string `toml:"theme"`
	StartScreen string `toml:"start_screen"`
}

const (
	defaultPrefsPath   = "~/.config/pulse/prefs.toml"
	defaultTheme       = "Pulse"
	defaultStartScreen = "landing"
)

// Defaults returns the preferences used when no file exists.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, StartScreen: defaultStartScreen}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// normalized trims both fields, lowercases the screen name and fills blanks
// from Defaults.
func (p Prefs) normalized() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	p.StartScreen = strings.ToLower(strings.TrimSpace(p.StartScreen))
	if p.StartScreen == "" {
		p.StartScreen = defaultStartScreen
	}
	return p
}

// Load reads preferences from path (empty means the default location).
// A missing, unreadable or malformed file yields Defaults; the error return
// covers an unresolvable path only.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Defaults(), nil
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults(), nil
	}
	return p.normalized(), nil
}

// Save writes preferences to path, creating directories as needed. The file
// is replaced by rename so a crash never leaves it half written.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p.normalized())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return expandPath(path)
}

// expandPath resolves a leading ~ and makes the path absolute.
func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if rest, ok := strings.CutPrefix(trimmed, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, rest)
	}
	return filepath.Abs(trimmed)
}
