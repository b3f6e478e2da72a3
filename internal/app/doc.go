// Package app is the composition root for Pulse.
//
// Run loads the config and saved preferences, opens the log file, parses the
// embedded content catalog, and starts one carousel.Controller for the
// feature cards and one carousel.Rotator for the testimonials. Both are
// closed when the UI exits, which cancels their pending timers.
//
// Fatal errors (returned from Run):
//   - unreadable or malformed config file
//   - a prefs path that cannot be resolved
//   - a log file that cannot be opened
//   - an invalid catalog or carousel timing
//
// A malformed prefs file is not fatal; the defaults are used instead.
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//	if err := app.Run(ctx, app.Options{Screen: "dashboard"}); err != nil {
//		log.Fatalf("pulse failed: %v", err)
//	}
package app
