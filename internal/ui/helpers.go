package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// renderBar draws a horizontal bar filled to frac (0-1) across width cells.
func renderBar(style lipgloss.Style, frac float64, width int) string {
	if width <= 0 {
		return ""
	}
	frac = math.Max(0, math.Min(1, frac))
	filled := int(math.Round(frac * float64(width)))
	return style.Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Faint(true).Render(strings.Repeat("░", width-filled))
}

// newProgress returns a solid accent progress bar without a percentage label.
func newProgress(t Theme, width int) progress.Model {
	return progress.New(
		progress.WithSolidFill(t.Accent),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// arrowPercent formats a change as "↑ 18%" or "↓ 4%".
func arrowPercent(pct float64) string {
	arrow := "↑"
	if pct < 0 {
		arrow = "↓"
		pct = -pct
	}
	return fmt.Sprintf("%s %.0f%%", arrow, pct)
}
