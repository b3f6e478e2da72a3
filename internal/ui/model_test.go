package ui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pulse/internal/carousel"
	"github.com/five82/pulse/internal/clock"
	"github.com/five82/pulse/internal/content"
	"github.com/five82/pulse/internal/prefs"
)

var epoch = time.Unix(1_700_000_000, 0)

type harness struct {
	m     Model
	clk   *clock.Manual
	prefs string
}

func newHarness(t *testing.T, screen Screen) *harness {
	t.Helper()
	return newHarnessCtx(t, context.Background(), screen)
}

func newHarnessCtx(t *testing.T, ctx context.Context, screen Screen) *harness {
	t.Helper()
	cat, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load() error = %v", err)
	}
	clk := clock.NewManual(epoch)
	features, err := carousel.New(len(cat.Features), carousel.DefaultTiming(), carousel.WithScheduler(clk))
	if err != nil {
		t.Fatalf("carousel.New() error = %v", err)
	}
	t.Cleanup(features.Close)
	quotes, err := carousel.NewRotator(len(cat.Testimonials), carousel.DefaultRotatorTiming(), carousel.WithScheduler(clk))
	if err != nil {
		t.Fatalf("carousel.NewRotator() error = %v", err)
	}
	t.Cleanup(quotes.Close)
	badges, err := carousel.NewRotator(len(cat.Badges), carousel.DefaultBadgeTiming(), carousel.WithScheduler(clk))
	if err != nil {
		t.Fatalf("carousel.NewRotator(badges) error = %v", err)
	}
	t.Cleanup(badges.Close)

	h := &harness{clk: clk, prefs: filepath.Join(t.TempDir(), "prefs.toml")}
	h.m = New(Options{
		Context:   ctx,
		Catalog:   cat,
		Features:  features,
		Quotes:    quotes,
		Badges:    badges,
		Screen:    screen,
		PrefsPath: h.prefs,
		Now:       clk.Now,
	})
	h.send(tea.WindowSizeMsg{Width: 120, Height: 48})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

// advance moves the fake clock and delivers one frame.
func (h *harness) advance(d time.Duration) {
	h.clk.Advance(d)
	h.send(tickMsg(h.clk.Now()))
}

func (h *harness) keys(s string) {
	for _, r := range s {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) key(t tea.KeyType) tea.Cmd {
	return h.send(tea.KeyMsg{Type: t})
}

// focus moves the landing page down to section s.
func (h *harness) focus(t *testing.T, s landingSection) {
	t.Helper()
	for range sectionCount {
		if h.m.landing.section == s {
			return
		}
		h.keys("j")
	}
	t.Fatalf("section %v not reachable", s)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestViewBeforeSize(t *testing.T) {
	m := New(Options{PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}

func TestLandingShowsActiveFeature(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	view := h.m.View()
	for _, want := range []string{"Revenue Tracking", "Features", "Home"} {
		if !strings.Contains(view, want) {
			t.Fatalf("landing view missing %q", want)
		}
	}
}

func TestAutoAdvanceSlidesTrack(t *testing.T) {
	h := newHarness(t, ScreenLanding)

	h.advance(5 * time.Second)
	if got := h.m.landing.slides.ActiveIndex; got != 1 {
		t.Fatalf("ActiveIndex after advance = %d, want 1", got)
	}
	if got := h.m.landing.track.Value(h.m.clock); got != 0 {
		t.Fatalf("track at start of slide = %v, want 0", got)
	}

	h.advance(350 * time.Millisecond)
	mid := h.m.landing.track.Value(h.m.clock)
	if mid <= 0 || mid >= 1 {
		t.Fatalf("track mid-slide = %v, want between 0 and 1", mid)
	}

	h.advance(350 * time.Millisecond)
	if got := h.m.landing.track.Value(h.m.clock); got != 1 {
		t.Fatalf("track after transition = %v, want 1", got)
	}
}

func TestCloneResetSnapsTrack(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	last := h.m.features.Size() - 1

	h.m.features.GoTo(last)
	h.advance(0)
	h.advance(time.Second)
	if got := h.m.landing.track.Value(h.m.clock); got != float64(last) {
		t.Fatalf("track after GoTo = %v, want %d", got, last)
	}

	// Auto-advance lands on the clone and the track slides onto it.
	h.advance(4 * time.Second)
	if !h.m.landing.slides.OnClone() {
		t.Fatalf("expected clone, got index %d", h.m.landing.slides.ActiveIndex)
	}
	if h.m.landing.activeSlide != 0 {
		t.Fatalf("activeSlide on clone = %d, want 0", h.m.landing.activeSlide)
	}

	// After the transition the controller teleports to 0; the track jumps
	// there without sliding back across every card.
	h.advance(700 * time.Millisecond)
	st := h.m.landing.slides
	if st.ActiveIndex != 0 || st.TransitionEnabled {
		t.Fatalf("after reset = %+v, want index 0 with transitions off", st)
	}
	if got := h.m.landing.track.Value(h.m.clock); got != 0 {
		t.Fatalf("track after reset = %v, want 0", got)
	}

	h.advance(50 * time.Millisecond)
	if !h.m.landing.slides.TransitionEnabled {
		t.Fatal("transitions not re-enabled after reset delay")
	}
}

func TestFeatureKeys(t *testing.T) {
	h := newHarness(t, ScreenLanding)

	h.keys("l")
	if got := h.m.landing.slides.ActiveIndex; got != 1 {
		t.Fatalf("after next = %d, want 1", got)
	}
	h.keys("3")
	if got := h.m.landing.slides.ActiveIndex; got != 2 {
		t.Fatalf("after dot 3 = %d, want 2", got)
	}
	h.keys("hh")
	if got := h.m.landing.slides.ActiveIndex; got != 0 {
		t.Fatalf("after two previous = %d, want 0", got)
	}
	h.keys("9")
	if got := h.m.landing.slides.ActiveIndex; got != 0 {
		t.Fatalf("out of range dot moved carousel to %d", got)
	}
}

func TestTestimonialFade(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	h.focus(t, sectionTestimonials)

	h.keys("l")
	q := h.m.landing.quote
	if q.Visible || q.Target != 1 || q.Index != 0 {
		t.Fatalf("after next = %+v, want fading from 0 to 1", q)
	}

	h.advance(400 * time.Millisecond)
	q = h.m.landing.quote
	if !q.Visible || q.Index != 1 {
		t.Fatalf("after fade = %+v, want entry 1 visible", q)
	}
	if !strings.Contains(h.m.View(), h.m.catalog.Testimonials[1].Name) {
		t.Fatalf("view missing %q", h.m.catalog.Testimonials[1].Name)
	}
}

func TestROIAdjust(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	h.focus(t, sectionROI)
	h.keys("l+")
	if h.m.landing.roi.Rate != 80 || h.m.landing.roi.Hours != 31 {
		t.Fatalf("roi = %+v, want rate 80 hours 31", h.m.landing.roi)
	}
}

func TestFAQToggle(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	h.focus(t, sectionFAQ)
	h.keys("l")
	h.key(tea.KeyEnter)
	if h.m.landing.faqOpen != 1 {
		t.Fatalf("faqOpen = %d, want 1", h.m.landing.faqOpen)
	}
	h.key(tea.KeyEnter)
	if h.m.landing.faqOpen != -1 {
		t.Fatalf("faqOpen = %d, want closed", h.m.landing.faqOpen)
	}
}

func TestLandingSectionOrder(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	want := []landingSection{
		sectionHowItWorks, sectionTestimonials, sectionROI,
		sectionIntegrations, sectionPricing, sectionFAQ, sectionFeatures,
	}
	for _, s := range want {
		h.keys("j")
		if h.m.landing.section != s {
			t.Fatalf("section = %v, want %v", h.m.landing.section, s)
		}
	}
	h.keys("k")
	if h.m.landing.section != sectionFAQ {
		t.Fatalf("k from features = %v, want FAQ", h.m.landing.section)
	}
}

func TestHowItWorksSteps(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	h.focus(t, sectionHowItWorks)

	view := h.m.View()
	for _, want := range []string{
		"Get started in minutes",
		"Connect your accounts", "Track your income", "Get insights",
		"$8,420", "$9,200", "Acme", "Book a demo",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("how it works view missing %q", want)
		}
	}

	h.key(tea.KeyEnter)
	if h.m.screen != ScreenOnboarding {
		t.Fatalf("Get started went to %v, want onboarding", h.m.screen)
	}

	h.key(tea.KeyEsc)
	h.keys("l")
	h.key(tea.KeyEnter)
	if h.m.screen != ScreenDashboard {
		t.Fatalf("Book a demo went to %v, want dashboard", h.m.screen)
	}
}

func TestPricingBillingToggle(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	h.focus(t, sectionPricing)

	view := h.m.View()
	for _, want := range []string{"Pricing that scales with you", "$12", "/month", "/forever", "-20%", "Everything in Free +", "Popular"} {
		if !strings.Contains(view, want) {
			t.Fatalf("monthly pricing view missing %q", want)
		}
	}

	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !h.m.landing.yearly {
		t.Fatal("space did not switch to yearly billing")
	}
	view = h.m.View()
	for _, want := range []string{"$120", "$290", "/year", "/forever"} {
		if !strings.Contains(view, want) {
			t.Fatalf("yearly pricing view missing %q", want)
		}
	}
	if strings.Contains(view, "/month") {
		t.Fatal("yearly view still shows monthly prices")
	}

	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if h.m.landing.yearly {
		t.Fatal("second space did not switch back to monthly")
	}
}

func TestPricingChoosePlan(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	h.focus(t, sectionPricing)

	h.keys("hh")
	if got := h.m.catalog.Pricing.Plans[h.m.landing.planCursor].Name; got != "Pro" {
		t.Fatalf("plan after hh = %q, want Pro", got)
	}
	h.key(tea.KeyEnter)
	if h.m.screen != ScreenOnboarding {
		t.Fatalf("screen = %v, want onboarding", h.m.screen)
	}
}

func TestNavBadgeCycles(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	badges := h.m.catalog.Badges

	if !strings.Contains(h.m.View(), "["+badges[0]+"]") {
		t.Fatalf("header missing first badge %q", badges[0])
	}

	h.advance(3500 * time.Millisecond)
	if h.m.badge.Visible {
		t.Fatal("badge not fading at 3.5s")
	}
	h.advance(200 * time.Millisecond)
	if h.m.badge.Index != 1 || !h.m.badge.Visible {
		t.Fatalf("badge = %+v, want entry 1 visible", h.m.badge)
	}
	if !strings.Contains(h.m.View(), "["+badges[1]+"]") {
		t.Fatalf("header missing second badge %q", badges[1])
	}

	h.advance(3500 * time.Millisecond)
	h.advance(3500 * time.Millisecond)
	if h.m.badge.Index != 0 {
		t.Fatalf("badge index = %d, want wrap to 0", h.m.badge.Index)
	}
}

func TestPreloaderSplash(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	latch, err := carousel.NewLatch(carousel.DefaultPreloaderDelay, carousel.WithScheduler(h.clk))
	if err != nil {
		t.Fatalf("NewLatch() error = %v", err)
	}
	t.Cleanup(latch.Close)
	h.m.preloader = latch

	if view := h.m.View(); strings.Contains(view, "Revenue Tracking") {
		t.Fatal("landing visible under the splash")
	}
	h.key(tea.KeyTab)
	if h.m.screen != ScreenLanding {
		t.Fatalf("tab during splash switched to %v", h.m.screen)
	}

	h.advance(1799 * time.Millisecond)
	if !h.m.splashing() {
		t.Fatal("splash dismissed early")
	}
	h.advance(time.Millisecond)
	if h.m.splashing() {
		t.Fatal("splash still up after 1.8s")
	}
	if !strings.Contains(h.m.View(), "Revenue Tracking") {
		t.Fatal("landing not shown after splash")
	}
}

func TestQuitDuringSplash(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	latch, err := carousel.NewLatch(time.Hour, carousel.WithScheduler(h.clk))
	if err != nil {
		t.Fatalf("NewLatch() error = %v", err)
	}
	t.Cleanup(latch.Close)
	h.m.preloader = latch

	if cmd := h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); !isQuit(cmd) {
		t.Fatal("q did not quit during splash")
	}
}

func TestTabCyclesScreens(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	h.key(tea.KeyTab)
	if h.m.screen != ScreenDashboard {
		t.Fatalf("screen = %v, want dashboard", h.m.screen)
	}
	h.key(tea.KeyShiftTab)
	if h.m.screen != ScreenLanding {
		t.Fatalf("screen = %v, want landing", h.m.screen)
	}
}

func TestDashboardCountersSettle(t *testing.T) {
	h := newHarness(t, ScreenDashboard)
	d := h.m.catalog.Dashboard

	if got := h.m.dash.stats[statThisMonth].Display(h.m.clock); got != 0 {
		t.Fatalf("counter on entry = %d, want 0", got)
	}
	h.advance(2 * time.Second)
	if got, want := h.m.dash.stats[statThisMonth].Display(h.m.clock), lastMonth(d.Revenue); got != want {
		t.Fatalf("counter settled = %d, want %d", got, want)
	}
	view := h.m.View()
	for _, want := range []string{d.Greeting, "Top Clients", "Recent Payments"} {
		if !strings.Contains(view, want) {
			t.Fatalf("dashboard view missing %q", want)
		}
	}

	before := h.m.dash.rangeIdx
	h.keys("r")
	if h.m.dash.rangeIdx == before {
		t.Fatal("r did not change the revenue range")
	}
}

func TestOnboardingFlow(t *testing.T) {
	h := newHarness(t, ScreenOnboarding)

	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	h.keys("j")
	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := h.m.onboard.selectedCount(); got != 2 {
		t.Fatalf("selected = %d, want 2", got)
	}

	h.key(tea.KeyEnter)
	if h.m.onboard.step != stepGoal {
		t.Fatalf("step = %d, want goal", h.m.onboard.step)
	}
	h.key(tea.KeyF2)
	if got := h.m.onboard.goalAmount(); got != 10000 {
		t.Fatalf("goal = %d, want 10000", got)
	}

	h.key(tea.KeyEnter)
	// q types into the field instead of quitting.
	h.keys("qa")
	if got := h.m.onboard.clientName.Value(); got != "qa" {
		t.Fatalf("client name = %q, want qa", got)
	}

	h.key(tea.KeyEnter)
	if h.m.onboard.step != stepDone || h.m.onboard.clientsAdded != 1 {
		t.Fatalf("step = %d clients = %d, want done with 1 client", h.m.onboard.step, h.m.onboard.clientsAdded)
	}
	if !strings.Contains(h.m.View(), "all set") {
		t.Fatal("done step not rendered")
	}

	h.key(tea.KeyEnter)
	if h.m.screen != ScreenDashboard {
		t.Fatalf("screen = %v, want dashboard", h.m.screen)
	}
}

func TestLoginSubmitsNothing(t *testing.T) {
	h := newHarness(t, ScreenLogin)

	h.key(tea.KeyEnter)
	h.key(tea.KeyEnter)
	if !strings.Contains(h.m.login.message, "Enter your email") {
		t.Fatalf("message = %q, want prompt for fields", h.m.login.message)
	}

	h.key(tea.KeyUp)
	h.keys("jo@example.com")
	h.key(tea.KeyEnter)
	h.keys("secret")
	h.key(tea.KeyEnter)
	if !strings.Contains(h.m.login.message, "nothing was sent") {
		t.Fatalf("message = %q", h.m.login.message)
	}
	if strings.Contains(h.m.View(), "secret") {
		t.Fatal("password rendered in clear text")
	}
}

func TestLegalScreen(t *testing.T) {
	h := newHarness(t, ScreenPrivacy)
	if !strings.Contains(h.m.View(), "Privacy Policy") {
		t.Fatal("privacy view missing title")
	}
	h.key(tea.KeyTab)
	if h.m.screen != ScreenTerms {
		t.Fatalf("screen = %v, want terms", h.m.screen)
	}
	if !strings.Contains(h.m.View(), h.m.catalog.Legal.Terms.Title) {
		t.Fatal("terms view missing title")
	}
}

func TestNotFound(t *testing.T) {
	h := newHarness(t, ScreenNotFound)
	if !strings.Contains(h.m.View(), "Page not found") {
		t.Fatal("404 view missing message")
	}
	h.key(tea.KeyEnter)
	if h.m.screen != ScreenLanding {
		t.Fatalf("screen = %v, want landing", h.m.screen)
	}
}

func TestHelpOverlay(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	h.keys("?")
	if !strings.Contains(h.m.View(), "Keyboard Shortcuts") {
		t.Fatal("help not shown")
	}
	h.keys("x")
	if h.m.showHelp {
		t.Fatal("help still open after a key")
	}
}

func TestThemeAndStartScreenPersist(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	h.keys("T")
	if h.m.theme.Name != "Midnight" {
		t.Fatalf("theme = %q, want Midnight", h.m.theme.Name)
	}

	h.key(tea.KeyTab)
	h.keys("S")
	if !strings.Contains(h.m.notice, "Dashboard") {
		t.Fatalf("notice = %q", h.m.notice)
	}

	p, err := prefs.Load(h.prefs)
	if err != nil {
		t.Fatalf("prefs.Load() error = %v", err)
	}
	if p.Theme != "Midnight" || p.StartScreen != "dashboard" {
		t.Fatalf("prefs = %+v, want Midnight/dashboard", p)
	}
}

func TestQuitKey(t *testing.T) {
	h := newHarness(t, ScreenLanding)
	if cmd := h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); !isQuit(cmd) {
		t.Fatal("q did not quit")
	}
}

func TestCancelledContextQuitsOnTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := newHarnessCtx(t, ctx, ScreenLanding)
	cancel()
	if cmd := h.send(tickMsg(h.clk.Now())); !isQuit(cmd) {
		t.Fatal("tick after cancel did not quit")
	}
}
