package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/pulse/internal/carousel"
	"github.com/five82/pulse/internal/content"
	"github.com/five82/pulse/internal/motion"
	"github.com/five82/pulse/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context  context.Context
	Catalog  content.Catalog
	Features *carousel.Controller
	Quotes   *carousel.Rotator
	Logger   *zap.Logger

	// Badges cycles the nav badge label. Nil shows the first badge.
	Badges *carousel.Rotator
	// Preloader holds the splash screen until it is done. Nil skips it.
	Preloader *carousel.Latch

	// Transition is the slide motion length; it should match the
	// controller's timing so the track lands as the clone reset fires.
	Transition time.Duration
	Counter    time.Duration
	Frame      time.Duration

	Screen    Screen
	ThemeName string
	PrefsPath string

	// StartScreen is the persisted start screen, rewritten on save.
	StartScreen Screen

	// Now overrides the frame clock in tests.
	Now func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	catalog    content.Catalog
	features   *carousel.Controller
	quotes     *carousel.Rotator
	badges     *carousel.Rotator
	preloader  *carousel.Latch
	logger     *zap.Logger
	prefsPath  string
	start      Screen
	frame      time.Duration
	transition time.Duration
	counterDur time.Duration
	now        func() time.Time

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	screen   Screen
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string
	clock    time.Time
	badge    carousel.RotatorState

	landing landingState
	dash    dashboardState
	onboard onboardingState
	login   loginState
	legal   viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	frame := opts.Frame
	if frame <= 0 {
		frame = DefaultFrameInterval
	}

	transition := opts.Transition
	if transition <= 0 {
		transition = carousel.DefaultTiming().Transition
	}

	counterDur := opts.Counter
	if counterDur <= 0 {
		counterDur = motion.DefaultCounterDuration
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		ctx:        ctx,
		catalog:    opts.Catalog,
		features:   opts.Features,
		quotes:     opts.Quotes,
		badges:     opts.Badges,
		preloader:  opts.Preloader,
		logger:     logger,
		prefsPath:  prefsPath,
		start:      opts.StartScreen,
		frame:      frame,
		transition: transition,
		counterDur: counterDur,
		now:        now,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      GetTheme(themeName),
		screen:     opts.Screen,
		clock:      now(),
		landing:    newLandingState(counterDur),
		dash:       newDashboardState(counterDur),
		onboard:    newOnboardingState(),
		login:      newLoginState(),
	}
	m.syncCarousel(m.clock)
	m.enterScreen(m.screen)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(m.frame),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.resizeLegal()
		return m, nil

	case tickMsg:
		if m.ctx.Err() != nil {
			return m, tea.Quit
		}
		m.clock = m.now()
		m.syncCarousel(m.clock)
		return m, tickCmd(m.frame)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.splashing() {
		return m.renderSplash()
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.splashing() {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	m.notice = ""

	// Screens with a focused text input get every key except the few that
	// cannot be typed.
	if m.editing() {
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextScreen):
			m.switchScreen(nextScreen(m.screen, 1))
			return m, nil
		case key.Matches(msg, m.keys.PrevScreen):
			m.switchScreen(nextScreen(m.screen, -1))
			return m, nil
		case key.Matches(msg, m.keys.Escape):
			m.switchScreen(ScreenLanding)
			return m, nil
		}
		return m.handleScreenKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.SaveStartup):
		if m.screen != ScreenNotFound {
			m.start = m.screen
		}
		m.savePrefs()
		if m.notice == "" {
			m.notice = "Pulse will open on " + m.start.Title()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextScreen):
		m.switchScreen(nextScreen(m.screen, 1))
		return m, nil

	case key.Matches(msg, m.keys.PrevScreen):
		m.switchScreen(nextScreen(m.screen, -1))
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.switchScreen(ScreenLanding)
		return m, nil
	}

	return m.handleScreenKey(msg)
}

func (m Model) handleScreenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case ScreenLanding:
		m.handleLandingKey(msg)
	case ScreenDashboard:
		m.handleDashboardKey(msg)
	case ScreenOnboarding:
		cmd = m.handleOnboardingKey(msg)
	case ScreenLogin:
		cmd = m.handleLoginKey(msg)
	case ScreenPrivacy, ScreenTerms:
		m.legal, cmd = m.legal.Update(msg)
	case ScreenNotFound:
		if key.Matches(msg, m.keys.Confirm) {
			m.switchScreen(ScreenLanding)
		}
	}
	return m, cmd
}

// editing reports whether a text input currently owns the keyboard.
func (m Model) editing() bool {
	switch m.screen {
	case ScreenOnboarding:
		return m.onboard.editing()
	case ScreenLogin:
		return true
	default:
		return false
	}
}

func (m *Model) switchScreen(s Screen) {
	if s == m.screen {
		return
	}
	m.logger.Debug("screen changed",
		zap.String("from", m.screen.String()),
		zap.String("to", s.String()),
	)
	m.screen = s
	m.enterScreen(s)
}

// enterScreen resets per-screen animations so they replay on every visit.
func (m *Model) enterScreen(s Screen) {
	now := m.clock
	switch s {
	case ScreenDashboard:
		m.dash.enter(m.catalog.Dashboard, now)
	case ScreenOnboarding:
		m.onboard.focus()
	case ScreenLogin:
		m.login.focus()
	case ScreenPrivacy:
		m.setLegal(m.catalog.Legal.Privacy)
	case ScreenTerms:
		m.setLegal(m.catalog.Legal.Terms)
	}
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, StartScreen: m.start.String()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
		m.notice = "Could not save preferences"
	}
}

// syncCarousel pulls the latest controller and rotator state.
func (m *Model) syncCarousel(now time.Time) {
	if m.features != nil {
		m.landing.observeSlides(m.features.Snapshot(), now, m.transition)
	}
	if m.quotes != nil {
		m.landing.quote = m.quotes.Snapshot()
	}
	if m.badges != nil {
		m.badge = m.badges.Snapshot()
	}
}

// splashing reports whether the preloader still covers the screen.
func (m Model) splashing() bool {
	return m.preloader != nil && !m.preloader.Done()
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	opts.Context = ctx
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
