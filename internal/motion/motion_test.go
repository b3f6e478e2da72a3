package motion

import (
	"math"
	"testing"
	"time"
)

var start = time.Unix(1_700_000_000, 0)

func TestEaseOutCubic_Endpoints(t *testing.T) {
	if got := EaseOutCubic(0); got != 0 {
		t.Fatalf("EaseOutCubic(0) = %v, want 0", got)
	}
	if got := EaseOutCubic(1); got != 1 {
		t.Fatalf("EaseOutCubic(1) = %v, want 1", got)
	}
	if got := EaseOutCubic(0.5); math.Abs(got-0.875) > 1e-9 {
		t.Fatalf("EaseOutCubic(0.5) = %v, want 0.875", got)
	}
}

func TestTween_ValueClampsToRange(t *testing.T) {
	tw := Tween{From: 10, To: 20, Start: start, Duration: 100 * time.Millisecond}

	tests := []struct {
		name string
		at   time.Duration
		want float64
	}{
		{"before start", -time.Second, 10},
		{"start", 0, 10},
		{"midpoint", 50 * time.Millisecond, 15},
		{"end", 100 * time.Millisecond, 20},
		{"after end", time.Second, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tw.Value(start.Add(tt.at)); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Value(+%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestTween_ZeroDurationJumps(t *testing.T) {
	tw := Tween{From: 1, To: 5, Start: start}
	if got := tw.Value(start); got != 5 {
		t.Fatalf("Value = %v, want 5", got)
	}
	if !tw.Done(start) {
		t.Fatalf("Done = false, want true")
	}
}

func TestCounter_ReachesTargetAtDuration(t *testing.T) {
	c := NewCounter(0, DefaultCounterDuration)
	c.Set(8420, start)

	if got := c.Display(start); got != 0 {
		t.Fatalf("Display at start = %d, want 0", got)
	}
	if !c.Animating(start.Add(time.Millisecond)) {
		t.Fatalf("Animating = false mid-flight")
	}
	if got := c.Display(start.Add(DefaultCounterDuration)); got != 8420 {
		t.Fatalf("Display at end = %d, want 8420", got)
	}
	if c.Animating(start.Add(DefaultCounterDuration)) {
		t.Fatalf("Animating = true after duration")
	}
}

func TestCounter_IsMonotoneForEaseOut(t *testing.T) {
	c := NewCounter(100, DefaultCounterDuration)
	c.Set(900, start)

	prev := c.Display(start)
	for ms := 10; ms <= 400; ms += 10 {
		got := c.Display(start.Add(time.Duration(ms) * time.Millisecond))
		if got < prev {
			t.Fatalf("Display went backwards at %dms: %d < %d", ms, got, prev)
		}
		prev = got
	}
}

func TestCounter_RetargetStartsFromDisplayedValue(t *testing.T) {
	c := NewCounter(0, DefaultCounterDuration)
	c.Set(1000, start)

	mid := start.Add(200 * time.Millisecond)
	shown := c.Value(mid)
	c.Set(0, mid)
	if got := c.Value(mid); math.Abs(got-shown) > 1e-9 {
		t.Fatalf("retarget jumped from %v to %v", shown, got)
	}
	if got := c.Display(mid.Add(DefaultCounterDuration)); got != 0 {
		t.Fatalf("Display after retarget = %d, want 0", got)
	}
}

func TestCounter_SameTargetIsNoop(t *testing.T) {
	c := NewCounter(0, DefaultCounterDuration)
	c.Set(50, start)
	c.Set(50, start.Add(300*time.Millisecond))
	if got := c.Display(start.Add(DefaultCounterDuration)); got != 50 {
		t.Fatalf("Display = %d, want 50", got)
	}
}

func TestCounter_ZeroValueUsesDefaultDuration(t *testing.T) {
	var c Counter
	c.Set(10, start)
	if c.Display(start.Add(100*time.Millisecond)) == 10 {
		t.Fatalf("zero-value counter finished early")
	}
	if got := c.Display(start.Add(DefaultCounterDuration)); got != 10 {
		t.Fatalf("Display = %d, want 10", got)
	}
}

func TestSpringEase_EndsAtOne(t *testing.T) {
	ease := SpringEase(6, 0.5)
	if got := ease(0); got != 0 {
		t.Fatalf("ease(0) = %v, want 0", got)
	}
	if got := ease(1); got != 1 {
		t.Fatalf("ease(1) = %v, want 1", got)
	}
	if got := ease(2); got != 1 {
		t.Fatalf("ease(2) = %v, want clamp to 1", got)
	}
	if got := ease(0.5); got <= 0 {
		t.Fatalf("ease(0.5) = %v, want progress", got)
	}
}

func TestSpringEase_TailSettlesWithoutJump(t *testing.T) {
	tests := []struct {
		name      string
		frequency float64
		damping   float64
	}{
		{"dashboard bars", 6, 0.45},
		{"critically damped", 6, 1},
		{"barely damped", 6, 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ease := SpringEase(tt.frequency, tt.damping)
			const step = 0.001
			prev := ease(0.95)
			for x := 0.95 + step; x <= 1; x += step {
				got := ease(x)
				if d := math.Abs(got - prev); d > 0.01 {
					t.Fatalf("ease jumped by %v at t=%.3f", d, x)
				}
				prev = got
			}
			if d := math.Abs(ease(1-1e-9) - 1); d > 2e-3 {
				t.Fatalf("ease just before 1 is %v away from 1", d)
			}
			if got := ease(1); got != 1 {
				t.Fatalf("ease(1) = %v, want 1", got)
			}
		})
	}
}
