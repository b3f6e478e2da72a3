package clock

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer; false means it already fired or was stopped.
	Stop() bool
}

// Scheduler creates cancellable one-shot timers.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// Real returns a Scheduler backed by the runtime timer wheel. Callbacks run
// on their own goroutine.
func Real() Scheduler {
	return realScheduler{}
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	return time.AfterFunc(d, f)
}

func (realScheduler) Now() time.Time {
	return time.Now()
}
