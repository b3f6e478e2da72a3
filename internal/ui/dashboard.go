package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pulse/internal/content"
	"github.com/five82/pulse/internal/motion"
	"github.com/five82/pulse/internal/revenue"
)

// stat card slots
const (
	statThisMonth = iota
	statPredicted
	statClients
	statRate
	statCount
)

// chartHeight is the number of rows in the revenue trend chart.
const chartHeight = 8

// barEase overshoots slightly before settling, like a spring.
var barEase = motion.SpringEase(6, 0.45)

type dashboardState struct {
	rangeIdx int
	stats    [statCount]motion.Counter
	barsFrom time.Time
	barDur   time.Duration
}

func newDashboardState(counter time.Duration) dashboardState {
	s := dashboardState{
		rangeIdx: len(revenue.Ranges) - 1,
		barDur:   3 * counter,
	}
	for i := range s.stats {
		s.stats[i] = motion.NewCounter(0, counter)
	}
	return s
}

// enter replays the counters from zero and regrows the chart.
func (s *dashboardState) enter(d content.Dashboard, now time.Time) {
	targets := [statCount]int{
		lastMonth(d.Revenue),
		d.Predicted,
		len(d.Clients),
		d.AvgRate,
	}
	for i, v := range targets {
		dur := s.stats[i].Duration
		s.stats[i] = motion.NewCounter(0, dur)
		s.stats[i].Set(float64(v), now)
	}
	s.barsFrom = now
}

func (s *dashboardState) cycleRange(now time.Time) {
	s.rangeIdx = (s.rangeIdx + 1) % len(revenue.Ranges)
	s.barsFrom = now
}

func (s dashboardState) selectedRange() revenue.Range {
	return revenue.Ranges[s.rangeIdx]
}

func lastMonth(months []content.MonthTotal) int {
	if len(months) == 0 {
		return 0
	}
	return months[len(months)-1].Amount
}

func (m *Model) handleDashboardKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.CycleRange), key.Matches(msg, m.keys.Next):
		m.dash.cycleRange(m.clock)
	case key.Matches(msg, m.keys.Prev):
		n := len(revenue.Ranges)
		m.dash.rangeIdx = (m.dash.rangeIdx + n - 1) % n
		m.dash.barsFrom = m.clock
	}
}

func (m Model) renderDashboard(width int) string {
	styles := m.theme.Styles()
	d := m.catalog.Dashboard
	now := m.clock

	var b strings.Builder
	b.WriteString(styles.Title.Render(d.Greeting))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render("(" + d.Initials + ")"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Here's how your freelance business is doing."))
	b.WriteString("\n\n")

	stat := func(label, value, note string, noteStyle lipgloss.Style) string {
		body := styles.FaintText.Render(label) + "\n" +
			styles.Title.Render(value) + "\n" +
			noteStyle.Render(note)
		return styles.Card.Width(22).Render(body)
	}
	change := float64(d.MonthChange)
	cards := []string{
		stat("This Month", revenue.USD(m.dash.stats[statThisMonth].Display(now)), arrowPercent(change), styles.SuccessText),
		stat("Predicted", revenue.USD(m.dash.stats[statPredicted].Display(now)), "Next month", styles.MutedText),
		stat("Active Clients", fmt.Sprintf("%d", m.dash.stats[statClients].Display(now)), fmt.Sprintf("%d pending", d.PendingClients), styles.MutedText),
		stat("Avg Rate", revenue.USD(m.dash.stats[statRate].Display(now))+"/hr", fmt.Sprintf("↑ $%d/hr", d.AvgRateChange), styles.SuccessText),
	}
	if width < LayoutCompactWidth {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1]))
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3]))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	b.WriteString("\n\n")

	trend := m.renderTrend(d.Revenue)
	clients := m.renderClients(d.Clients)
	if width < LayoutCompactWidth {
		b.WriteString(trend)
		b.WriteString("\n")
		b.WriteString(clients)
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, trend, "  ", clients))
	}
	b.WriteString("\n")
	b.WriteString(m.renderPayments(d.Payments))
	if d.Insight != "" {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render("✦ ") + styles.MutedText.Render(d.Insight))
	}
	return b.String()
}

// renderTrend draws monthly revenue as vertical bars that spring up from
// zero whenever the range changes or the screen is entered.
func (m Model) renderTrend(all []content.MonthTotal) string {
	styles := m.theme.Styles()
	months := revenue.Window(all, m.dash.selectedRange())

	peak := 0
	for _, mt := range months {
		peak = max(peak, mt.Amount)
	}
	grow := motion.Tween{From: 0, To: 1, Start: m.dash.barsFrom, Duration: m.dash.barDur, Ease: barEase}.Value(m.clock)

	const colWidth = 5
	heights := make([]int, len(months))
	for i, mt := range months {
		if peak > 0 {
			heights[i] = int(float64(mt.Amount) / float64(peak) * chartHeight * grow)
		}
		heights[i] = min(max(heights[i], 0), chartHeight)
	}

	var rows []string
	for r := chartHeight; r >= 1; r-- {
		var line strings.Builder
		for i := range months {
			if heights[i] >= r {
				line.WriteString(styles.AccentText.Render(" ███ "))
			} else {
				line.WriteString(strings.Repeat(" ", colWidth))
			}
		}
		rows = append(rows, line.String())
	}
	var labels strings.Builder
	for _, mt := range months {
		labels.WriteString(styles.FaintText.Render(fmt.Sprintf(" %-3s ", mt.Month)))
	}
	rows = append(rows, labels.String())

	var tabs []string
	for i, r := range revenue.Ranges {
		if i == m.dash.rangeIdx {
			tabs = append(tabs, styles.Selected.Render(r.String()))
		} else {
			tabs = append(tabs, styles.FaintText.Render(r.String()))
		}
	}

	header := styles.Title.Render("Revenue") + "  " + strings.Join(tabs, " ")
	footer := styles.MutedText.Render("vs last month ") + styles.SuccessText.Render(arrowPercent(revenue.MonthChange(all)))
	return styles.Card.Render(header + "\n\n" + strings.Join(rows, "\n") + "\n" + footer)
}

func (m Model) renderClients(clients []content.Client) string {
	styles := m.theme.Styles()
	total := revenue.Total(clients)

	var b strings.Builder
	b.WriteString(styles.Title.Render("Top Clients"))
	b.WriteString("\n\n")
	for _, c := range clients {
		share := revenue.Share(c.Revenue, total)
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color))
		b.WriteString(fmt.Sprintf("%-18s %8s  %s\n",
			truncate(c.Name, 18),
			revenue.USD(c.Revenue),
			styles.FaintText.Render(fmt.Sprintf("%d projects", c.Projects)),
		))
		b.WriteString(renderBar(swatch, share, 30))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("Top client generates %d%% of revenue", revenue.TopClientPercent(clients))))
	return styles.Card.Render(b.String())
}

func (m Model) renderPayments(payments []content.Payment) string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Title.Render("Recent Payments"))
	b.WriteString("\n")
	for _, p := range payments {
		b.WriteString(fmt.Sprintf("%-18s %s  %s  %s\n",
			truncate(p.Client, 18),
			styles.Title.Render(fmt.Sprintf("%8s", revenue.USD(p.Amount))),
			styles.MutedText.Render(fmt.Sprintf("%-6s", p.Date)),
			styles.FaintText.Render(p.Source),
		))
	}
	return b.String()
}
