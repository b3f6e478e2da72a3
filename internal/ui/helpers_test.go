package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "Pulse", 10, "Pulse"},
		{"trims", "  Pulse  ", 10, "Pulse"},
		{"ellipsis", "Revenue Tracking", 10, "Revenue..."},
		{"tiny", "Revenue", 2, "Re"},
		{"no limit", "Revenue", 0, "Revenue"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestRenderBar_Width(t *testing.T) {
	for _, frac := range []float64{-1, 0, 0.4, 1, 2} {
		got := ansi.Strip(renderBar(GetTheme("Pulse").Styles().AccentText, frac, 10))
		if w := ansi.StringWidth(got); w != 10 {
			t.Fatalf("renderBar(%v) width = %d, want 10 (%q)", frac, w, got)
		}
	}
	half := ansi.Strip(renderBar(GetTheme("Pulse").Styles().AccentText, 0.5, 10))
	if strings.Count(half, "█") != 5 {
		t.Fatalf("renderBar(0.5) = %q, want 5 filled cells", half)
	}
}

func TestArrowPercent(t *testing.T) {
	if got := arrowPercent(18.2); got != "↑ 18%" {
		t.Fatalf("arrowPercent(18.2) = %q", got)
	}
	if got := arrowPercent(-4); got != "↓ 4%" {
		t.Fatalf("arrowPercent(-4) = %q", got)
	}
}

func TestIndent(t *testing.T) {
	if got := indent("a\nb", "  "); got != "  a\n  b" {
		t.Fatalf("indent = %q", got)
	}
}
