package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/five82/pulse/internal/carousel"
	"github.com/five82/pulse/internal/content"
	"github.com/five82/pulse/internal/motion"
	"github.com/five82/pulse/internal/revenue"
)

// landingSection is the focused block of the landing page.
type landingSection int

const (
	sectionFeatures landingSection = iota
	sectionHowItWorks
	sectionTestimonials
	sectionROI
	sectionIntegrations
	sectionPricing
	sectionFAQ
	sectionCount
)

func (s landingSection) title() string {
	switch s {
	case sectionFeatures:
		return "Features"
	case sectionHowItWorks:
		return "How it works"
	case sectionTestimonials:
		return "Testimonials"
	case sectionROI:
		return "Hidden revenue"
	case sectionIntegrations:
		return "Integrations"
	case sectionPricing:
		return "Pricing"
	case sectionFAQ:
		return "FAQ"
	default:
		return ""
	}
}

// roi counter slots
const (
	roiAnnual = iota
	roiUndercharged
	roiLatePay
	roiTax
	roiTotal
	roiCount
)

type landingState struct {
	section landingSection

	// Feature carousel, mirrored from the controller every frame.
	slides      carousel.State
	track       motion.Tween // horizontal offset, in slides
	activeSlide int
	activeSince time.Time

	quote carousel.RotatorState

	roi         revenue.Inputs
	roiCounters [roiCount]motion.Counter

	stepCTA int // 0 get started, 1 book a demo

	yearly     bool
	planCursor int

	faqCursor int
	faqOpen   int
}

func newLandingState(counter time.Duration) landingState {
	s := landingState{
		activeSlide: -1,
		roi:         revenue.DefaultInputs(),
		faqOpen:     -1,
	}
	est := s.roi.Estimate()
	for i, v := range roiValues(est) {
		s.roiCounters[i] = motion.NewCounter(float64(v), counter)
	}
	return s
}

func roiValues(r revenue.ROI) [roiCount]int {
	return [roiCount]int{r.Annual, r.Undercharged, r.LatePay, r.TaxSavings, r.Total}
}

// observeSlides folds a controller snapshot into the track animation.
// Moves with transitions enabled slide over transition; the teleport from
// the clone back to 0 snaps, since both show the same card.
func (s *landingState) observeSlides(st carousel.State, now time.Time, transition time.Duration) {
	prev := s.slides
	s.slides = st
	if st.Size == 0 {
		return
	}

	if prev.Size == 0 {
		pos := float64(st.ActiveIndex)
		s.track = motion.Tween{From: pos, To: pos, Start: now}
	} else if st.ActiveIndex != prev.ActiveIndex {
		to := float64(st.ActiveIndex)
		wrapped := prev.ActiveIndex == prev.Size && st.ActiveIndex == 0
		if st.TransitionEnabled && !wrapped {
			s.track = motion.Tween{
				From:     s.track.Value(now),
				To:       to,
				Start:    now,
				Duration: transition,
				Ease:     motion.EaseOutCubic,
			}
		} else {
			s.track = motion.Tween{From: to, To: to, Start: now}
		}
	}

	if cur := st.CurrentRealIndex(); cur != s.activeSlide {
		s.activeSlide = cur
		s.activeSince = now
	}
}

// cardElapsed is how long slide i has been active, or zero if it is not.
func (s *landingState) cardElapsed(i int, now time.Time) time.Duration {
	if !s.slides.IsSlideActive(i) || s.activeSlide != i {
		return 0
	}
	return now.Sub(s.activeSince)
}

func (s *landingState) setROI(in revenue.Inputs, now time.Time) {
	s.roi = in
	for i, v := range roiValues(in.Estimate()) {
		s.roiCounters[i].Set(float64(v), now)
	}
}

func (m *Model) handleLandingKey(msg tea.KeyMsg) {
	s := &m.landing
	k := m.keys

	switch {
	case key.Matches(msg, k.Up):
		s.section = (s.section + sectionCount - 1) % sectionCount
		return
	case key.Matches(msg, k.Down):
		s.section = (s.section + 1) % sectionCount
		return
	}

	switch s.section {
	case sectionFeatures:
		if m.features == nil {
			return
		}
		switch {
		case key.Matches(msg, k.Prev):
			m.features.Previous()
		case key.Matches(msg, k.Next):
			m.features.Next()
		case key.Matches(msg, k.Dot):
			if i, ok := digit(msg.String()); ok && i < m.features.Size() {
				m.features.GoTo(i)
			}
		}
		m.syncCarousel(m.clock)

	case sectionTestimonials:
		if m.quotes == nil {
			return
		}
		switch {
		case key.Matches(msg, k.Prev):
			m.quotes.Previous()
		case key.Matches(msg, k.Next):
			m.quotes.Next()
		case key.Matches(msg, k.Dot):
			if i, ok := digit(msg.String()); ok && i < len(m.catalog.Testimonials) {
				m.quotes.GoTo(i)
			}
		}
		m.syncCarousel(m.clock)

	case sectionROI:
		in := s.roi
		switch {
		case key.Matches(msg, k.Prev):
			in = in.AdjustRate(-1)
		case key.Matches(msg, k.Next):
			in = in.AdjustRate(1)
		case key.Matches(msg, k.LessHours):
			in = in.AdjustHours(-1)
		case key.Matches(msg, k.MoreHours):
			in = in.AdjustHours(1)
		}
		if in != s.roi {
			s.setROI(in, m.clock)
		}

	case sectionHowItWorks:
		switch {
		case key.Matches(msg, k.Prev), key.Matches(msg, k.Next):
			s.stepCTA = 1 - s.stepCTA
		case key.Matches(msg, k.Confirm):
			if s.stepCTA == 0 {
				m.switchScreen(ScreenOnboarding)
			} else {
				m.switchScreen(ScreenDashboard)
			}
		}

	case sectionPricing:
		n := len(m.catalog.Pricing.Plans)
		switch {
		case key.Matches(msg, k.Toggle):
			s.yearly = !s.yearly
		case n == 0:
		case key.Matches(msg, k.Prev):
			s.planCursor = (s.planCursor + n - 1) % n
		case key.Matches(msg, k.Next):
			s.planCursor = (s.planCursor + 1) % n
		case key.Matches(msg, k.Confirm):
			m.logger.Debug("plan chosen",
				zap.String("plan", m.catalog.Pricing.Plans[s.planCursor].Name),
				zap.Bool("yearly", s.yearly),
			)
			m.switchScreen(ScreenOnboarding)
		}

	case sectionFAQ:
		n := len(m.catalog.FAQs)
		if n == 0 {
			return
		}
		switch {
		case key.Matches(msg, k.Prev):
			s.faqCursor = (s.faqCursor + n - 1) % n
		case key.Matches(msg, k.Next):
			s.faqCursor = (s.faqCursor + 1) % n
		case key.Matches(msg, k.Confirm), key.Matches(msg, k.Toggle):
			if s.faqOpen == s.faqCursor {
				s.faqOpen = -1
			} else {
				s.faqOpen = s.faqCursor
			}
		}
	}
}

// renderLanding renders the landing page: hero, section tabs and the
// focused section.
func (m Model) renderLanding(width int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.catalog.Tagline))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Revenue intelligence for freelancers."))
	b.WriteString("\n\n")

	tabs := make([]string, 0, sectionCount)
	for s := landingSection(0); s < sectionCount; s++ {
		label := s.title()
		if width < LayoutCompactWidth {
			label = truncate(label, 7)
		}
		if s == m.landing.section {
			tabs = append(tabs, styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, styles.Tab.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	switch m.landing.section {
	case sectionFeatures:
		b.WriteString(m.renderFeatures(width))
	case sectionHowItWorks:
		b.WriteString(m.renderHowItWorks(width))
	case sectionTestimonials:
		b.WriteString(m.renderTestimonial(width))
	case sectionROI:
		b.WriteString(m.renderROI())
	case sectionIntegrations:
		b.WriteString(m.renderIntegrations(width))
	case sectionPricing:
		b.WriteString(m.renderPricing(width))
	case sectionFAQ:
		b.WriteString(m.renderFAQ(width))
	}
	return b.String()
}

// renderFeatures draws the carousel: the sliding track window with the
// previous and next previews on either side, then the dots.
func (m Model) renderFeatures(width int) string {
	styles := m.theme.Styles()
	feats := m.catalog.Features
	st := m.landing.slides
	if len(feats) == 0 || st.Size == 0 {
		return styles.MutedText.Render("No features")
	}

	window := m.renderTrack(feats)

	row := window
	if width >= LayoutCompactWidth {
		prev := m.renderPreview(feats[st.PreviousRealIndex()])
		next := m.renderPreview(feats[st.NextRealIndex()])
		row = lipgloss.JoinHorizontal(lipgloss.Center, prev, "  ", window, "  ", next)
	}

	var b strings.Builder
	b.WriteString(row)
	b.WriteString("\n\n")
	b.WriteString(m.renderDots(len(feats), st.CurrentRealIndex()))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(st.Phase.String()))
	return b.String()
}

// renderTrack lays every card of the extended sequence side by side and
// cuts out the CardWidth columns under the current track offset.
func (m Model) renderTrack(feats []content.Feature) string {
	ext := carousel.Extended(feats)
	cards := make([]string, len(ext))
	for i, f := range ext {
		cards[i] = m.renderCard(f, i%len(feats), i == m.landing.slides.ActiveIndex)
	}
	track := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	left := int(m.landing.track.Value(m.clock)*CardWidth + 0.5)
	lines := strings.Split(track, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, left, left+CardWidth)
	}
	return strings.Join(lines, "\n")
}

const cardBodyLines = 9

func (m Model) renderCard(f content.Feature, slide int, active bool) string {
	styles := m.theme.Styles()
	inner := CardWidth - 4

	var b strings.Builder
	b.WriteString(styles.Title.Render(f.Title))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(ansi.Wordwrap(f.Description, inner, "")))
	b.WriteString("\n\n")
	b.WriteString(m.renderCardBody(f.ID, m.landing.cardElapsed(slide, m.clock), inner))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Bold(true).Render(f.Stat))
	b.WriteString(" ")
	b.WriteString(styles.FaintText.Render(f.StatLabel))

	style := styles.Card
	if active {
		style = styles.ActiveCard
	}
	return style.Width(CardWidth - 2).Height(cardBodyLines + 4).Render(b.String())
}

func (m Model) renderCardBody(id string, elapsed time.Duration, width int) string {
	styles := m.theme.Styles()
	switch id {
	case "revenue":
		names := []string{"Stripe", "PayPal", "Wise"}
		rows := make([]string, 0, len(names))
		for i, st := range integrationStatuses(elapsed) {
			dot := styles.FaintText.Render("○")
			label := styles.FaintText
			switch st {
			case linkConnecting:
				dot = styles.AccentText.Render(spinnerFrame(elapsed))
				label = styles.AccentText
			case linkConnected:
				dot = styles.SuccessText.Render("●")
				label = styles.SuccessText
			}
			rows = append(rows, fmt.Sprintf("%s %-8s %s", dot, names[i], label.Render(st.String())))
		}
		return strings.Join(rows, "\n")

	case "prediction":
		p := predictionProgress(elapsed)
		bar := newProgress(m.theme, width)
		return styles.FaintText.Render("Next 3 months") + "  " + styles.AccentText.Render("↑ Trending up") + "\n" +
			bar.ViewAs(float64(p)/100) + "\n" +
			styles.FaintText.Render(fmt.Sprintf("%-*s%s", width-9, "Now", "+3 months"))

	case "clients":
		cc := m.catalog.CardClients
		pcts := make([]int, len(cc))
		for i, c := range cc {
			pcts[i] = c.Pct
		}
		bars := clientBars(pcts, elapsed)
		rows := make([]string, 0, len(cc)*2)
		for i, c := range cc {
			amount := revenue.USD(c.Amount)
			rows = append(rows, fmt.Sprintf("%-*s%s", width-len(amount), c.Name, amount))
			rows = append(rows, renderBar(styles.AccentText, bars[i]/100, width))
		}
		return strings.Join(rows, "\n")

	case "rates":
		before, after := rateHeights(elapsed)
		rc := m.catalog.RateCard
		barWidth := width - 12
		line := func(label string, frac float64, amount int, style lipgloss.Style) string {
			value := ""
			if frac > 0 {
				value = fmt.Sprintf("$%d", amount)
			}
			return fmt.Sprintf("%-7s", label) + renderBar(style, frac, barWidth) + " " + styles.Title.Render(value)
		}
		return styles.FaintText.Render("EFFECTIVE HOURLY RATE") + "\n" +
			line("Before", before, rc.Before, styles.MutedText) + "\n" +
			line("After", after, rc.After, styles.AccentText)
	}
	return ""
}

func (m Model) renderPreview(f content.Feature) string {
	styles := m.theme.Styles()
	body := styles.FaintText.Render(f.Title) + "\n" +
		styles.FaintText.Render(ansi.Wordwrap(f.Description, PreviewWidth-4, ""))
	return styles.Card.
		BorderForeground(lipgloss.Color(m.theme.SurfaceAlt)).
		Width(PreviewWidth - 2).
		Render(body)
}

func (m Model) renderDots(n, active int) string {
	styles := m.theme.Styles()
	dots := make([]string, n)
	for i := range dots {
		if i == active {
			dots[i] = styles.AccentText.Render("●")
		} else {
			dots[i] = styles.FaintText.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// renderTestimonial shows the current quote; it dims while the rotator is
// between fade-out and swap.
func (m Model) renderTestimonial(width int) string {
	styles := m.theme.Styles()
	ts := m.catalog.Testimonials
	q := m.landing.quote
	if len(ts) == 0 || q.Size == 0 {
		return styles.MutedText.Render("No testimonials")
	}
	t := ts[q.Index%len(ts)]

	quoteStyle := styles.Text.Italic(true)
	nameStyle := styles.Title
	if !q.Visible {
		quoteStyle = styles.FaintText.Italic(true)
		nameStyle = styles.FaintText
	}

	wrap := min(width-4, 64)
	avatar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(m.theme.Accent)).
		Padding(0, 1).
		Render(t.Avatar)

	var b strings.Builder
	b.WriteString(quoteStyle.Render(ansi.Wordwrap("“"+t.Quote+"”", wrap, "")))
	b.WriteString("\n\n")
	b.WriteString(avatar + " " + nameStyle.Render(t.Name) + "  " + styles.MutedText.Render(t.Role))
	b.WriteString("\n\n")
	b.WriteString(m.renderDots(len(ts), q.Index))
	return b.String()
}

func (m Model) renderROI() string {
	styles := m.theme.Styles()
	s := m.landing
	now := m.clock

	value := func(i int) string {
		return revenue.USD(s.roiCounters[i].Display(now))
	}

	inputs := lipgloss.JoinVertical(lipgloss.Left,
		styles.MutedText.Render("Hourly rate"),
		styles.Title.Render(fmt.Sprintf("$%d", s.roi.Rate))+styles.FaintText.Render("  ←/→"),
		renderBar(styles.AccentText, float64(s.roi.Rate-revenue.MinRate)/float64(revenue.MaxRate-revenue.MinRate), 24),
		"",
		styles.MutedText.Render("Hours per week"),
		styles.Title.Render(fmt.Sprintf("%d", s.roi.Hours))+styles.FaintText.Render("  -/+"),
		renderBar(styles.AccentText, float64(s.roi.Hours-revenue.MinHours)/float64(revenue.MaxHours-revenue.MinHours), 24),
	)

	row := func(badge, label string, i int) string {
		return styles.FaintText.Render(fmt.Sprintf("%-5s", badge)) +
			styles.MutedText.Render(fmt.Sprintf("%-22s", label)) +
			styles.Title.Render(value(i))
	}
	results := lipgloss.JoinVertical(lipgloss.Left,
		styles.FaintText.Render("ANNUAL REVENUE"),
		styles.Title.Render(value(roiAnnual)),
		"",
		row("~8%", "Undercharged hours", roiUndercharged),
		row("~3.5%", "Late payment costs", roiLatePay),
		row("~5%", "Tax savings missed", roiTax),
		"",
		styles.MutedText.Render("Pulse could find you ")+styles.AccentText.Bold(true).Render(value(roiTotal))+styles.MutedText.Render("/year"),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Card.Render(inputs),
		"  ",
		styles.ActiveCard.Render(results),
	)
}

func (m Model) renderIntegrations(width int) string {
	styles := m.theme.Styles()
	cols := 4
	if width < LayoutCompactWidth {
		cols = 2
	}
	cells := make([]string, 0, len(m.catalog.Integrations))
	for _, in := range m.catalog.Integrations {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(in.Color)).Render("■")
		cells = append(cells, lipgloss.NewStyle().Width(18).Render(swatch+" "+styles.Text.Render(in.Name)))
	}
	var rows []string
	for i := 0; i < len(cells); i += cols {
		end := min(i+cols, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}
	return styles.MutedText.Render(fmt.Sprintf("Connect %d+ platforms in seconds", len(m.catalog.Integrations))) +
		"\n\n" + strings.Join(rows, "\n")
}

func (m Model) renderFAQ(width int) string {
	styles := m.theme.Styles()
	wrap := min(width-6, 72)
	var b strings.Builder
	for i, f := range m.catalog.FAQs {
		marker := "+"
		if i == m.landing.faqOpen {
			marker = "−"
		}
		line := marker + " " + f.Question
		if i == m.landing.faqCursor {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
		if i == m.landing.faqOpen {
			b.WriteString(styles.MutedText.Render(indent(ansi.Wordwrap(f.Answer, wrap, ""), "  ")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

var spinner = []string{"◐", "◓", "◑", "◒"}

func spinnerFrame(elapsed time.Duration) string {
	return spinner[int(elapsed/(120*time.Millisecond))%len(spinner)]
}
