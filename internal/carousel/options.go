package carousel

import (
	"go.uber.org/zap"

	"github.com/five82/pulse/internal/clock"
)

// Option configures a Controller or Rotator.
type Option func(*options)

type options struct {
	sched   clock.Scheduler
	logger  *zap.Logger
	name    string
	onSlide func(State)
	onQuote func(RotatorState)
}

// WithScheduler sets the timer source. Defaults to clock.Real().
func WithScheduler(s clock.Scheduler) Option {
	return func(o *options) { o.sched = s }
}

// WithLogger sets the debug logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithName labels log entries, e.g. "features".
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithObserver registers f to receive every Controller state change in
// order. f runs with the controller locked and must not call back into it.
func WithObserver(f func(State)) Option {
	return func(o *options) { o.onSlide = f }
}

// WithRotatorObserver is WithObserver for a Rotator.
func WithRotatorObserver(f func(RotatorState)) Option {
	return func(o *options) { o.onQuote = f }
}

func buildOptions(opts []Option) options {
	o := options{name: "carousel"}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.sched == nil {
		o.sched = clock.Real()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
