package carousel

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/five82/pulse/internal/clock"
)

// RotatorTiming holds the crossfade periods.
type RotatorTiming struct {
	Advance time.Duration // time between automatic swaps
	Fade    time.Duration // fade-out length before the content swaps
}

// DefaultRotatorTiming matches the landing page testimonials.
func DefaultRotatorTiming() RotatorTiming {
	return RotatorTiming{
		Advance: 7000 * time.Millisecond,
		Fade:    400 * time.Millisecond,
	}
}

// DefaultBadgeTiming matches the nav badge, which cycles its label every
// 3.5 s with a short fade.
func DefaultBadgeTiming() RotatorTiming {
	return RotatorTiming{
		Advance: 3500 * time.Millisecond,
		Fade:    200 * time.Millisecond,
	}
}

func (t RotatorTiming) validate() error {
	if t.Advance <= 0 {
		return fmt.Errorf("advance interval must be positive (got %v)", t.Advance)
	}
	if t.Fade <= 0 {
		return fmt.Errorf("fade duration must be positive (got %v)", t.Fade)
	}
	if t.Fade >= t.Advance {
		return fmt.Errorf("fade %v must be shorter than advance interval %v", t.Fade, t.Advance)
	}
	return nil
}

// RotatorState is an immutable view of a Rotator.
type RotatorState struct {
	Index   int  // entry currently rendered
	Target  int  // entry shown once a pending swap lands
	Size    int  // number of entries
	Visible bool // false while fading out
	Version uint64
}

// Rotator cycles through Size entries with a fade-out, swap, fade-in
// sequence. Unlike Controller it wraps with plain modulo; there is no
// sliding track.
type Rotator struct {
	mu       sync.Mutex
	size     int
	timing   RotatorTiming
	sched    clock.Scheduler
	logger   *zap.Logger
	observer func(RotatorState)

	index   int
	target  int
	visible bool
	version uint64
	closed  bool

	advance slot
	swap    slot
}

// NewRotator creates a rotator for size entries and starts auto-advancing.
func NewRotator(size int, timing RotatorTiming, opts ...Option) (*Rotator, error) {
	if size < 1 {
		return nil, ErrEmptyCatalog
	}
	if err := timing.validate(); err != nil {
		return nil, fmt.Errorf("rotator timing: %w", err)
	}
	o := buildOptions(opts)
	if o.name == "carousel" {
		o.name = "rotator"
	}

	r := &Rotator{
		size:     size,
		timing:   timing,
		sched:    o.sched,
		logger:   o.logger.With(zap.String("component", o.name)),
		observer: o.onQuote,
		visible:  true,
	}
	r.Start()
	return r, nil
}

// Start re-arms the auto-advance countdown.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.startLocked()
}

// GoTo fades to entry i (wrapped into range) and restarts the countdown.
// Selecting the entry already shown, or already being faded to, does
// nothing.
func (r *Rotator) GoTo(i int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	n := normalize(i, r.size)
	if n == r.target {
		return
	}
	r.fadeTo(n, "goto")
	r.startLocked()
}

// Next fades to the following entry.
func (r *Rotator) Next() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if r.size == 1 {
		return
	}
	r.fadeTo(normalize(r.target+1, r.size), "next")
	r.startLocked()
}

// Previous fades to the preceding entry.
func (r *Rotator) Previous() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if r.size == 1 {
		return
	}
	r.fadeTo(normalize(r.target-1, r.size), "previous")
	r.startLocked()
}

// Close cancels every pending timer.
func (r *Rotator) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.advance.cancel()
	r.swap.cancel()
}

// Snapshot returns the current state.
func (r *Rotator) Snapshot() RotatorState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked()
}

// SwapPending reports whether a fade is in flight.
func (r *Rotator) SwapPending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.swap.pending()
}

func (r *Rotator) isClosed() bool {
	return r.closed
}

func (r *Rotator) startLocked() {
	arm(r.sched, &r.mu, &r.advance, r.timing.Advance, r.isClosed, r.tick)
}

func (r *Rotator) tick() {
	r.fadeTo((r.target+1)%r.size, "tick")
	r.startLocked()
}

func (r *Rotator) fadeTo(n int, cause string) {
	r.target = n
	r.visible = false
	arm(r.sched, &r.mu, &r.swap, r.timing.Fade, r.isClosed, r.land)
	r.changed(cause)
}

func (r *Rotator) land() {
	r.index = r.target
	r.visible = true
	r.changed("swap")
}

func (r *Rotator) changed(cause string) {
	r.version++
	state := r.stateLocked()
	r.logger.Debug("rotator update",
		zap.String("cause", cause),
		zap.Int("index", state.Index),
		zap.Int("target", state.Target),
		zap.Bool("visible", state.Visible),
	)
	if r.observer != nil {
		r.observer(state)
	}
}

func (r *Rotator) stateLocked() RotatorState {
	return RotatorState{
		Index:   r.index,
		Target:  r.target,
		Size:    r.size,
		Visible: r.visible,
		Version: r.version,
	}
}
