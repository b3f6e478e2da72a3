// Package motion interpolates display values over time.
package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Ease maps linear progress in [0, 1] onto eased progress.
type Ease func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseOutCubic decelerates into the target.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

const (
	springFPS = 60
	// springMaxSamples bounds sampling to ten seconds of spring time.
	springMaxSamples = 10 * springFPS
	springSettle     = 1e-3
)

// SpringEase samples a harmonica spring moving from 0 to 1 until it settles
// and returns it as an easing curve over [0, 1]. Underdamped springs
// overshoot before settling. A spring still moving after ten seconds has
// its remaining offset tapered out over the last quarter of the curve, so
// the curve reaches 1 without a jump either way.
func SpringEase(frequency, damping float64) Ease {
	spring := harmonica.NewSpring(harmonica.FPS(springFPS), frequency, damping)
	samples := []float64{0}
	pos, vel := 0.0, 0.0
	for len(samples) <= springMaxSamples {
		pos, vel = spring.Update(pos, vel, 1)
		samples = append(samples, pos)
		if math.Abs(pos-1) < springSettle && math.Abs(vel) < springSettle*springFPS {
			break
		}
	}
	n := len(samples) - 1
	if math.Abs(samples[n]-1) >= springSettle {
		taper(samples)
	}

	return func(t float64) float64 {
		t = clamp01(t)
		x := t * float64(n)
		i := int(x)
		if i >= n {
			return 1
		}
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

// taper scales the offset from 1 down to zero across the last quarter of
// samples.
func taper(samples []float64) {
	n := len(samples) - 1
	from := n - n/4
	for i := from; i <= n; i++ {
		w := float64(n-i) / float64(n-from)
		samples[i] = 1 + (samples[i]-1)*w
	}
}

// Tween interpolates from From to To over Duration starting at Start.
type Tween struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
	Ease     Ease
}

// Progress returns linear progress in [0, 1] at now.
func (tw Tween) Progress(now time.Time) float64 {
	if tw.Duration <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(tw.Start)) / float64(tw.Duration))
}

// Value returns the interpolated value at now.
func (tw Tween) Value(now time.Time) float64 {
	p := tw.Progress(now)
	if p >= 1 {
		return tw.To
	}
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	return tw.From + (tw.To-tw.From)*ease(p)
}

// Done reports whether the tween has reached its target.
func (tw Tween) Done(now time.Time) bool {
	return tw.Progress(now) >= 1
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
