// Package clock provides owned, cancellable timer handles.
//
// Components that animate or auto-advance never call time.AfterFunc or
// time.NewTicker directly. They take a Scheduler, keep the Timer handles it
// returns, and stop them when superseded or torn down.
//
// # Schedulers
//
//   - Real: wraps time.AfterFunc. Callbacks run on timer goroutines, so the
//     owning component must serialize its state.
//   - Manual: virtual time for tests. Advance fires due callbacks
//     synchronously, earliest first, ties broken by scheduling order.
//
// # Usage Example
//
//	clk := clock.NewManual(time.Unix(0, 0))
//	t := clk.AfterFunc(700*time.Millisecond, reset)
//	clk.Advance(699 * time.Millisecond) // nothing fires
//	t.Stop()                            // reset never runs
package clock
