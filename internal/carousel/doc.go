// Package carousel implements the timer-driven slide controllers behind the
// Pulse landing page.
//
// # Controller
//
// Controller drives the feature carousel: an auto-advancing track that
// always slides right to left. The track holds the N real slides plus a
// clone of slide 0 at index N:
//
//	index:   0     1     2     3     4
//	slide: [rev] [pre] [cli] [rat] [rev']
//
// Each tick moves the active index forward by one. When it reaches the clone
// the controller holds it for the transition duration (the slide motion),
// then in a single update disables transitions and snaps to index 0. One
// reset delay later transitions are re-enabled. The viewer sees a continuous
// forward loop.
//
//	Idle(i) --tick to N--> AnimatingToClone
//	   ^                           |
//	   |                      Transition: index 0, transitions off
//	   |                           v
//	   +------ResetDelay----- TransitionSuppressed
//
// GoTo, Next and Previous return to Idle from any phase, drop any pending
// reset work and restart the auto-advance countdown.
//
// # Rotator
//
// Rotator drives the testimonial crossfade: every period it fades out, swaps
// to the next entry once the fade finishes, and fades back in. It wraps with
// plain modulo.
//
// # Timers
//
// Both types take a clock.Scheduler (clock.Real by default) and own every
// handle they arm. Re-arming stops the previous handle; Close stops all of
// them. Each callback re-checks a generation counter under the lock, so a
// callback already in flight when its timer was stopped cannot touch state.
//
// # Rendering
//
// The UI reads Snapshot and uses the State helpers:
//
//	s := features.Snapshot()
//	left := catalog[s.PreviousRealIndex()]
//	main := catalog[s.CurrentRealIndex()]
//	right := catalog[s.NextRealIndex()]
//	animate := s.TransitionEnabled
package carousel
