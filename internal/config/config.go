package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/pulse/internal/carousel"
	"github.com/five82/pulse/internal/motion"
)

// Config holds the tunable timings and log destination for Pulse.
type Config struct {
	LogFile  string
	LogLevel string

	Carousel     carousel.Timing
	Testimonials carousel.RotatorTiming
	Badge        carousel.RotatorTiming
	Counter      time.Duration
	Preloader    time.Duration
}

const (
	defaultConfigPath = "~/.config/pulse/config.toml"
	defaultLogFile    = "~/.local/state/pulse/pulse.log"
	defaultLogLevel   = "info"
)

// Default returns the built-in configuration with paths expanded.
func Default() Config {
	return Config{
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
		Carousel:     carousel.DefaultTiming(),
		Testimonials: carousel.DefaultRotatorTiming(),
		Badge:        carousel.DefaultBadgeTiming(),
		Counter:      motion.DefaultCounterDuration,
		Preloader:    carousel.DefaultPreloaderDelay,
	}
}

type rawConfig struct {
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
	Carousel struct {
		AdvanceMS    int64 `toml:"advance_ms"`
		TransitionMS int64 `toml:"transition_ms"`
		ResetDelayMS int64 `toml:"reset_delay_ms"`
	} `toml:"carousel"`
	Testimonials struct {
		AdvanceMS int64 `toml:"advance_ms"`
		FadeMS    int64 `toml:"fade_ms"`
	} `toml:"testimonials"`
	Badge struct {
		AdvanceMS int64 `toml:"advance_ms"`
		FadeMS    int64 `toml:"fade_ms"`
	} `toml:"badge"`
	Counter struct {
		DurationMS int64 `toml:"duration_ms"`
	} `toml:"counter"`
	Preloader struct {
		DelayMS int64 `toml:"delay_ms"`
	} `toml:"preloader"`
}

// Load locates and parses the Pulse config, falling back to defaults when missing.
// Absent or non-positive values keep their defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}

	overrideMS(&cfg.Carousel.Advance, raw.Carousel.AdvanceMS)
	overrideMS(&cfg.Carousel.Transition, raw.Carousel.TransitionMS)
	overrideMS(&cfg.Carousel.ResetDelay, raw.Carousel.ResetDelayMS)
	overrideMS(&cfg.Testimonials.Advance, raw.Testimonials.AdvanceMS)
	overrideMS(&cfg.Testimonials.Fade, raw.Testimonials.FadeMS)
	overrideMS(&cfg.Badge.Advance, raw.Badge.AdvanceMS)
	overrideMS(&cfg.Badge.Fade, raw.Badge.FadeMS)
	overrideMS(&cfg.Counter, raw.Counter.DurationMS)
	overrideMS(&cfg.Preloader, raw.Preloader.DelayMS)

	return cfg, nil
}

func overrideMS(dst *time.Duration, ms int64) {
	if ms > 0 {
		*dst = time.Duration(ms) * time.Millisecond
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
