package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/pulse/internal/content"
	"github.com/five82/pulse/internal/revenue"
)

const stepCardWidth = 36

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// renderHowItWorks draws the three onboarding steps, each with its sample
// figure, and the two calls to action.
func (m Model) renderHowItWorks(width int) string {
	styles := m.theme.Styles()
	hw := m.catalog.HowItWorks
	inner := stepCardWidth - 4

	cards := make([]string, 0, len(hw.Steps))
	for i, step := range hw.Steps {
		var b strings.Builder
		b.WriteString(styles.AccentText.Render(fmt.Sprintf("%02d", i+1)))
		b.WriteString("  ")
		b.WriteString(styles.Title.Render(step.Title))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(ansi.Wordwrap(step.Body, inner, "")))
		b.WriteString("\n\n")
		b.WriteString(m.renderStepVisual(i, inner))
		cards = append(cards, styles.Card.Width(stepCardWidth-2).Render(b.String()))
	}

	row := lipgloss.JoinVertical(lipgloss.Left, cards...)
	if width >= len(cards)*stepCardWidth {
		row = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	ctas := []string{"Get started →", "Book a demo →"}
	for i, label := range ctas {
		if i == m.landing.stepCTA {
			ctas[i] = styles.ActiveTab.Render(label)
		} else {
			ctas[i] = styles.Tab.Render(label)
		}
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(hw.Heading))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(ansi.Wordwrap(hw.Subtext, max(width-2, 20), "")))
	b.WriteString("\n\n")
	b.WriteString(row)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(ctas, "  "))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render("←/→ choose · enter go"))
	return b.String()
}

func (m Model) renderStepVisual(step, width int) string {
	styles := m.theme.Styles()
	hw := m.catalog.HowItWorks

	switch step {
	case 0:
		// Sources orbit the mark; one lights up per second.
		lit := int(m.clock.Unix()) % max(len(hw.Sources), 1)
		names := make([]string, len(hw.Sources))
		for i, src := range hw.Sources {
			if i == lit {
				names[i] = styles.AccentText.Render(src)
			} else {
				names[i] = styles.FaintText.Render(src)
			}
		}
		if len(names) < 4 {
			return strings.Join(names, " · ")
		}
		center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
		return center.Render(names[0]) + "\n" +
			center.Render(names[3]+"   "+styles.AccentText.Render(logoMark)+"   "+names[1]) + "\n" +
			center.Render(names[2])

	case 1:
		spark := make([]rune, len(hw.Bars))
		for i, v := range hw.Bars {
			idx := min(max(v, 0)*len(sparkBlocks)/101, len(sparkBlocks)-1)
			spark[i] = sparkBlocks[idx]
		}
		return styles.FaintText.Render("This month") + "\n" +
			styles.Title.Render(revenue.USD(hw.MonthTotal)) + " " +
			styles.SuccessText.Render(arrowPercent(float64(hw.MonthChange))) + "\n" +
			styles.AccentText.Render(string(spark))

	case 2:
		bar := newProgress(m.theme, width)
		return styles.FaintText.Render(fmt.Sprintf("Monthly goal %d%%", hw.GoalPct)) + "\n" +
			bar.ViewAs(float64(hw.GoalPct)/100) + "\n" +
			styles.Title.Render(revenue.USD(hw.Predicted)) + styles.FaintText.Render(" predicted") + "\n" +
			styles.MutedText.Render(fmt.Sprintf("Avg rate $%d/hr · Top client %s", hw.AvgRate, hw.TopClient))
	}
	return ""
}

const planCardWidth = 30

// renderPricing draws the billing toggle and one card per plan. The
// focused card gets the accent border.
func (m Model) renderPricing(width int) string {
	styles := m.theme.Styles()
	pr := m.catalog.Pricing
	s := m.landing

	monthly, yearly := styles.ActiveTab.Render("Monthly"), styles.Tab.Render("Yearly")
	if s.yearly {
		monthly, yearly = styles.Tab.Render("Monthly"), styles.ActiveTab.Render("Yearly")
	}
	toggle := monthly + yearly
	if pr.YearlyDiscount > 0 {
		toggle += " " + styles.SuccessText.Render(fmt.Sprintf("-%d%%", pr.YearlyDiscount))
	}

	cards := make([]string, 0, len(pr.Plans))
	for i, p := range pr.Plans {
		cards = append(cards, m.renderPlan(p, i == s.planCursor))
	}
	row := lipgloss.JoinVertical(lipgloss.Left, cards...)
	if width >= len(cards)*planCardWidth {
		row = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(pr.Heading))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(ansi.Wordwrap(pr.Subtext, max(width-2, 20), "")))
	b.WriteString("\n\n")
	b.WriteString(toggle)
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render("space billing · ←/→ plan · enter choose"))
	b.WriteString("\n\n")
	b.WriteString(row)
	return b.String()
}

func (m Model) renderPlan(p content.Plan, focused bool) string {
	styles := m.theme.Styles()
	price, period := p.Price(m.landing.yearly)

	var b strings.Builder
	b.WriteString(styles.Title.Render(p.Name))
	if p.Popular {
		b.WriteString(" ")
		b.WriteString(styles.ActiveTab.Render("Popular"))
	}
	b.WriteString("\n")
	b.WriteString(styles.Title.Render(revenue.USD(price)))
	b.WriteString(styles.FaintText.Render("/" + period))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(p.Description))
	b.WriteString("\n\n")
	button := styles.Tab.Render(p.Button)
	if focused {
		button = styles.ActiveTab.Render(p.Button)
	}
	b.WriteString(button)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", planCardWidth-4)))
	b.WriteString("\n")
	if p.Inherits != "" {
		b.WriteString(styles.MutedText.Render("Everything in " + p.Inherits + " +"))
		b.WriteString("\n")
	}
	for _, f := range p.Features {
		b.WriteString(styles.SuccessText.Render("✓ "))
		b.WriteString(styles.Text.Render(f))
		b.WriteString("\n")
	}

	style := styles.Card
	if focused {
		style = styles.ActiveCard
	}
	return style.Width(planCardWidth - 2).Render(strings.TrimSuffix(b.String(), "\n"))
}
