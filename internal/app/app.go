package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/pulse/internal/carousel"
	"github.com/five82/pulse/internal/config"
	"github.com/five82/pulse/internal/content"
	"github.com/five82/pulse/internal/logging"
	"github.com/five82/pulse/internal/prefs"
	"github.com/five82/pulse/internal/ui"
)

// Options configure the Pulse application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pulse/prefs.toml
	Screen     string // overrides the saved start screen
	FPS        int    // frames per second; zero uses default
}

// Run boots the Pulse TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	features, err := carousel.New(len(catalog.Features), cfg.Carousel,
		carousel.WithLogger(logger),
		carousel.WithName("features"),
	)
	if err != nil {
		return fmt.Errorf("init feature carousel: %w", err)
	}
	defer features.Close()

	quotes, err := carousel.NewRotator(len(catalog.Testimonials), cfg.Testimonials,
		carousel.WithLogger(logger),
		carousel.WithName("testimonials"),
	)
	if err != nil {
		return fmt.Errorf("init testimonials: %w", err)
	}
	defer quotes.Close()

	var badges *carousel.Rotator
	if len(catalog.Badges) > 0 {
		badges, err = carousel.NewRotator(len(catalog.Badges), cfg.Badge,
			carousel.WithLogger(logger),
			carousel.WithName("badge"),
		)
		if err != nil {
			return fmt.Errorf("init nav badge: %w", err)
		}
		defer badges.Close()
	}

	preloader, err := carousel.NewLatch(cfg.Preloader,
		carousel.WithLogger(logger),
		carousel.WithName("preloader"),
	)
	if err != nil {
		return fmt.Errorf("init preloader: %w", err)
	}
	defer preloader.Close()

	saved := savedScreen(userPrefs.StartScreen)
	screen := saved
	if opts.Screen != "" {
		var ok bool
		screen, ok = ui.ParseScreen(opts.Screen)
		if !ok {
			logger.Warn("unknown screen requested", zap.String("screen", opts.Screen))
		}
	}

	logger.Info("pulse starting",
		zap.String("screen", screen.String()),
		zap.String("theme", userPrefs.Theme),
		zap.Int("features", len(catalog.Features)),
		zap.Int("testimonials", len(catalog.Testimonials)),
	)

	err = ui.Run(ctx, ui.Options{
		Catalog:     catalog,
		Features:    features,
		Quotes:      quotes,
		Badges:      badges,
		Preloader:   preloader,
		Logger:      logger,
		Transition:  cfg.Carousel.Transition,
		Counter:     cfg.Counter,
		Frame:       frameInterval(opts.FPS),
		Screen:      screen,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
		StartScreen: saved,
	})
	if err != nil {
		logger.Error("ui exited", zap.Error(err))
		return err
	}
	logger.Info("pulse stopped")
	return nil
}

// savedScreen maps a persisted start screen to a Screen. A stale or unknown
// value opens the landing page rather than the 404 screen.
func savedScreen(name string) ui.Screen {
	s, ok := ui.ParseScreen(name)
	if !ok {
		return ui.ScreenLanding
	}
	return s
}

// frameInterval converts a frame rate to a tick period. Rates outside 1-120
// fall back to the default.
func frameInterval(fps int) time.Duration {
	if fps <= 0 || fps > 120 {
		return ui.DefaultFrameInterval
	}
	return time.Second / time.Duration(fps)
}
