package carousel

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/five82/pulse/internal/clock"
)

// ErrEmptyCatalog is returned when a carousel is built without slides.
var ErrEmptyCatalog = errors.New("carousel needs at least one slide")

// Timing holds the carousel periods.
type Timing struct {
	Advance    time.Duration // auto-advance period
	Transition time.Duration // slide motion length; the clone is held this long
	ResetDelay time.Duration // frame window with transitions off after the teleport
}

// DefaultTiming matches the landing page feature carousel.
func DefaultTiming() Timing {
	return Timing{
		Advance:    5000 * time.Millisecond,
		Transition: 700 * time.Millisecond,
		ResetDelay: 50 * time.Millisecond,
	}
}

func (t Timing) validate() error {
	if t.Advance <= 0 {
		return fmt.Errorf("advance interval must be positive (got %v)", t.Advance)
	}
	if t.Transition <= 0 {
		return fmt.Errorf("transition duration must be positive (got %v)", t.Transition)
	}
	if t.ResetDelay <= 0 {
		return fmt.Errorf("reset delay must be positive (got %v)", t.ResetDelay)
	}
	return nil
}

// Phase is the loop-reset state of a Controller. The teleport off the clone
// and the transition suppression land in one update, so there is no
// separate phase between them.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAnimatingToClone
	PhaseTransitionSuppressed
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnimatingToClone:
		return "animating-to-clone"
	case PhaseTransitionSuppressed:
		return "transition-suppressed"
	case PhaseClosed:
		return "closed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Controller runs an infinite, auto-advancing carousel over Size slides.
//
// The track is the catalog plus a clone of the first slide at index Size.
// Auto-advance always moves forward; when it lands on the clone the
// controller waits for the slide motion to finish, then teleports back to
// index 0 with transitions off and re-enables them one frame later.
//
// All methods are safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	size     int
	timing   Timing
	sched    clock.Scheduler
	logger   *zap.Logger
	observer func(State)

	active      int
	transitions bool
	phase       Phase
	version     uint64
	closed      bool

	advance slot
	reset   slot
}

// New creates a controller for size slides and starts auto-advancing.
func New(size int, timing Timing, opts ...Option) (*Controller, error) {
	if size < 1 {
		return nil, ErrEmptyCatalog
	}
	if err := timing.validate(); err != nil {
		return nil, fmt.Errorf("carousel timing: %w", err)
	}
	o := buildOptions(opts)

	c := &Controller{
		size:        size,
		timing:      timing,
		sched:       o.sched,
		logger:      o.logger.With(zap.String("component", o.name)),
		observer:    o.onSlide,
		transitions: true,
		phase:       PhaseIdle,
	}
	c.Start()
	return c, nil
}

// Start re-arms the auto-advance countdown, cancelling any pending one.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.startLocked()
}

// GoTo jumps to slide i. Any integer is accepted and wrapped into
// [0, Size), so callers can pass current-1 or current+1 freely. The
// countdown restarts and any pending loop reset is dropped.
func (c *Controller) GoTo(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.goToLocked(i)
}

// Next moves one slide forward.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.goToLocked(c.active + 1)
}

// Previous moves one slide back. From the first slide this wraps instantly
// to the last; there is no leading clone to animate through.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.goToLocked(c.active - 1)
}

// Close cancels every pending timer. Later calls are no-ops and no
// callback runs afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.advance.cancel()
	c.reset.cancel()
	c.phase = PhaseClosed
	c.logger.Debug("carousel closed", zap.Int("index", c.active))
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Size returns the number of real slides.
func (c *Controller) Size() int {
	return c.size
}

// ActiveIndex returns the position on the extended track, in [0, Size].
func (c *Controller) ActiveIndex() int {
	return c.Snapshot().ActiveIndex
}

// TransitionEnabled reports whether index changes should animate.
func (c *Controller) TransitionEnabled() bool {
	return c.Snapshot().TransitionEnabled
}

// Phase returns the loop-reset phase.
func (c *Controller) Phase() Phase {
	return c.Snapshot().Phase
}

// CurrentRealIndex returns the catalog index on screen.
func (c *Controller) CurrentRealIndex() int {
	return c.Snapshot().CurrentRealIndex()
}

// PreviousRealIndex returns the catalog index of the left preview card.
func (c *Controller) PreviousRealIndex() int {
	return c.Snapshot().PreviousRealIndex()
}

// NextRealIndex returns the catalog index of the right preview card.
func (c *Controller) NextRealIndex() int {
	return c.Snapshot().NextRealIndex()
}

// IsSlideActive reports whether catalog entry i is the one visibly showing.
func (c *Controller) IsSlideActive(i int) bool {
	return c.Snapshot().IsSlideActive(i)
}

// ResetPending reports whether loop-reset work is scheduled.
func (c *Controller) ResetPending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reset.pending()
}

func (c *Controller) isClosed() bool {
	return c.closed
}

func (c *Controller) startLocked() {
	arm(c.sched, &c.mu, &c.advance, c.timing.Advance, c.isClosed, c.tick)
}

func (c *Controller) goToLocked(i int) {
	c.moveTo(normalize(i, c.size), "goto")
	c.startLocked()
}

func (c *Controller) tick() {
	if c.active == c.size {
		// Only reachable when the period is shorter than the transition:
		// finish the loop now so the index never passes the clone.
		c.reset.cancel()
		c.active = 0
	}
	c.moveTo(c.active+1, "tick")
	c.startLocked()
}

// moveTo is the single index setter. Landing on the clone schedules the
// loop reset; any other move cancels it.
func (c *Controller) moveTo(i int, cause string) {
	c.reset.cancel()
	c.active = i
	c.transitions = true
	if i == c.size {
		c.phase = PhaseAnimatingToClone
		arm(c.sched, &c.mu, &c.reset, c.timing.Transition, c.isClosed, c.teleport)
	} else {
		c.phase = PhaseIdle
	}
	c.changed(cause)
}

func (c *Controller) teleport() {
	c.logger.Debug("carousel teleport", zap.Int("from", c.active))
	c.transitions = false
	c.active = 0
	c.phase = PhaseTransitionSuppressed
	arm(c.sched, &c.mu, &c.reset, c.timing.ResetDelay, c.isClosed, c.reenable)
	c.changed("teleport")
}

func (c *Controller) reenable() {
	c.transitions = true
	c.phase = PhaseIdle
	c.changed("reenable")
}

func (c *Controller) changed(cause string) {
	c.version++
	state := c.stateLocked()
	c.logger.Debug("carousel update",
		zap.String("cause", cause),
		zap.Int("index", state.ActiveIndex),
		zap.Bool("transition", state.TransitionEnabled),
		zap.Stringer("phase", state.Phase),
	)
	if c.observer != nil {
		c.observer(state)
	}
}

func (c *Controller) stateLocked() State {
	return State{
		ActiveIndex:       c.active,
		Size:              c.size,
		TransitionEnabled: c.transitions,
		Phase:             c.phase,
		Version:           c.version,
	}
}
