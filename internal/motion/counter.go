package motion

import (
	"math"
	"time"
)

// DefaultCounterDuration is how long an animated number takes to settle.
const DefaultCounterDuration = 400 * time.Millisecond

// Counter animates a displayed number toward a target with an ease-out
// cubic curve. The zero value shows 0 and animates with the default
// duration.
type Counter struct {
	tween    Tween
	Duration time.Duration
}

// NewCounter returns a Counter resting at value.
func NewCounter(value float64, duration time.Duration) Counter {
	return Counter{
		tween:    Tween{From: value, To: value},
		Duration: duration,
	}
}

// Set starts animating toward target from whatever is displayed at now.
// Setting the current target again does nothing.
func (c *Counter) Set(target float64, now time.Time) {
	if target == c.tween.To {
		return
	}
	d := c.Duration
	if d <= 0 {
		d = DefaultCounterDuration
	}
	c.tween = Tween{
		From:     c.tween.Value(now),
		To:       target,
		Start:    now,
		Duration: d,
		Ease:     EaseOutCubic,
	}
}

// Target returns the value being animated toward.
func (c Counter) Target() float64 {
	return c.tween.To
}

// Value returns the unrounded displayed value at now.
func (c Counter) Value(now time.Time) float64 {
	return c.tween.Value(now)
}

// Display returns the displayed value at now, rounded to an integer.
func (c Counter) Display(now time.Time) int {
	return int(math.Round(c.tween.Value(now)))
}

// Animating reports whether the counter is still moving at now.
func (c Counter) Animating(now time.Time) bool {
	return !c.tween.Done(now) && c.tween.From != c.tween.To
}
