package ui

import (
	"time"

	"github.com/five82/pulse/internal/motion"
)

// Each feature card plays a short looping animation while its slide is
// active. The timelines below are pure functions of the time since the
// slide became active, so a card restarts from zero whenever it is shown
// again.

// linkStatus is the state of one row on the integration card.
type linkStatus int

const (
	linkWaiting linkStatus = iota
	linkConnecting
	linkConnected
)

func (s linkStatus) String() string {
	switch s {
	case linkConnecting:
		return "Connecting..."
	case linkConnected:
		return "Connected"
	default:
		return "Waiting"
	}
}

const (
	integrationCycle = 7000 * time.Millisecond
	predictionStep   = 50 * time.Millisecond
	clientCycle      = 5000 * time.Millisecond
	rateCycle        = 5500 * time.Millisecond

	// barSlide is how long a bar takes to reach a new length.
	barSlide = 500 * time.Millisecond
)

// integrationStatuses returns the three integration rows at elapsed.
// Rows connect one after another every 1.5s, hold, then the loop restarts
// at 7s.
func integrationStatuses(elapsed time.Duration) [3]linkStatus {
	t := wrap(elapsed, integrationCycle)
	switch {
	case t < 1500*time.Millisecond:
		return [3]linkStatus{linkConnecting, linkWaiting, linkWaiting}
	case t < 3000*time.Millisecond:
		return [3]linkStatus{linkConnected, linkConnecting, linkWaiting}
	case t < 4500*time.Millisecond:
		return [3]linkStatus{linkConnected, linkConnected, linkConnecting}
	default:
		return [3]linkStatus{linkConnected, linkConnected, linkConnected}
	}
}

// predictionProgress climbs by 2 every 50ms, shows 100 for one step and
// then restarts at 0.
func predictionProgress(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	steps := int(elapsed / predictionStep)
	return (steps % 51) * 2
}

// step is a target value that takes effect at a given offset in a cycle.
type step struct {
	at    time.Duration
	value float64
}

// stepValue eases between the targets of a looping step timeline. Before
// the first step the value is zero.
func stepValue(steps []step, cycle, elapsed time.Duration, ease motion.Ease) float64 {
	t := wrap(elapsed, cycle)
	prev, cur := 0.0, 0.0
	var since time.Duration = -1
	for _, s := range steps {
		if t < s.at {
			break
		}
		prev, cur = cur, s.value
		since = t - s.at
	}
	if since < 0 {
		return 0
	}
	tw := motion.Tween{From: prev, To: cur, Duration: barSlide, Ease: ease}
	return tw.Value(tw.Start.Add(since))
}

// clientBars returns the client card bar lengths (0-100) at elapsed.
func clientBars(pcts []int, elapsed time.Duration) []float64 {
	out := make([]float64, len(pcts))
	for i, pct := range pcts {
		at := time.Duration(i+1) * 300 * time.Millisecond
		out[i] = stepValue([]step{{at: at, value: float64(pct)}}, clientCycle, elapsed, motion.EaseOutCubic)
	}
	return out
}

// rateHeights returns the before and after bar heights as fractions of the
// full after bar.
func rateHeights(elapsed time.Duration) (before, after float64) {
	const full = 96.0
	before = stepValue([]step{{at: 400 * time.Millisecond, value: 64 / full}}, rateCycle, elapsed, motion.EaseOutCubic)
	after = stepValue([]step{{at: 1000 * time.Millisecond, value: 1}}, rateCycle, elapsed, motion.EaseOutCubic)
	return before, after
}

func wrap(d, cycle time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d % cycle
}
