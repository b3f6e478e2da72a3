// Package config loads Pulse's optional TOML configuration.
//
// # Overview
//
// Pulse runs without any configuration file. When one exists it can move the
// log file and retune the animation timings used by the feature carousel,
// the testimonial and nav badge rotators, the counters and the splash screen.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pulse/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing, empty or non-positive, keep defaults
//
// # Default Values
//
//   - Log file: ~/.local/state/pulse/pulse.log
//   - Log level: info
//   - Carousel: advance 5000ms, transition 700ms, reset delay 50ms
//   - Testimonials: advance 7000ms, fade 400ms
//   - Badge: advance 3500ms, fade 200ms
//   - Counter: 400ms
//   - Preloader: 1800ms
//
// # TOML Format
//
//	log_file = "~/.local/state/pulse/pulse.log"
//	log_level = "debug"
//
//	[carousel]
//	advance_ms = 5000
//	transition_ms = 700
//	reset_delay_ms = 50
//
//	[testimonials]
//	advance_ms = 7000
//	fade_ms = 400
//
//	[badge]
//	advance_ms = 3500
//	fade_ms = 200
//
//	[counter]
//	duration_ms = 400
//
//	[preloader]
//	delay_ms = 1800
//
// Every field is optional. Tilde expansion is performed on log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. Timing combinations are validated
// later by the carousel constructors, which reject a fade that does not fit
// inside its advance interval.
package config
