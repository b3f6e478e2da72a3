package carousel

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/five82/pulse/internal/clock"
)

// DefaultPreloaderDelay is how long the splash screen stays up.
const DefaultPreloaderDelay = 1800 * time.Millisecond

// Latch is a one-shot timer that flips to done after a fixed delay, used for
// the splash screen. Closing it before the delay leaves it not done.
type Latch struct {
	mu     sync.Mutex
	delay  time.Duration
	sched  clock.Scheduler
	logger *zap.Logger
	start  time.Time
	done   bool
	closed bool
	timer  slot
}

// NewLatch starts a latch that completes after delay.
func NewLatch(delay time.Duration, opts ...Option) (*Latch, error) {
	if delay <= 0 {
		return nil, fmt.Errorf("latch delay must be positive (got %v)", delay)
	}
	o := buildOptions(opts)
	if o.name == "carousel" {
		o.name = "latch"
	}

	l := &Latch{
		delay:  delay,
		sched:  o.sched,
		logger: o.logger.With(zap.String("component", o.name)),
		start:  o.sched.Now(),
	}
	l.mu.Lock()
	arm(l.sched, &l.mu, &l.timer, delay, l.isClosed, l.fire)
	l.mu.Unlock()
	return l, nil
}

// Done reports whether the delay has elapsed.
func (l *Latch) Done() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// Progress returns the elapsed share of the delay in [0, 1].
func (l *Latch) Progress() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done {
		return 1
	}
	p := float64(l.sched.Now().Sub(l.start)) / float64(l.delay)
	return min(max(p, 0), 1)
}

// Close cancels the pending timer.
func (l *Latch) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	l.timer.cancel()
}

func (l *Latch) isClosed() bool {
	return l.closed
}

func (l *Latch) fire() {
	l.done = true
	l.logger.Debug("latch done", zap.Duration("after", l.delay))
}
