package ticker

import (
	"log/slog"

	"github.com/mathershifter/ticker/internal/clock"
	"github.com/mathershifter/ticker/internal/logging"
	"github.com/mathershifter/ticker/internal/pool"
)

type (
	// Instant is a point on the monotonic timeline, in nanoseconds.
	Instant = clock.Instant

	// Clock is the time source a controller sleeps on.
	Clock = clock.Clock

	// Runner launches schedule loops.
	Runner = pool.Runner

	// Pool is a Runner with a fixed limit on live loops.
	Pool = pool.Pool
)

// RealClock returns the monotonic system clock.
func RealClock() Clock {
	return clock.Real()
}

// NewPool creates a Runner that allows at most limit live schedule loops.
func NewPool(limit int) *Pool {
	return pool.New(limit)
}

// Option configures a Timer or Ticker.
type Option func(*options)

type options struct {
	clock  clock.Clock
	runner pool.Runner
	logger *slog.Logger
	strict bool
}

func buildOptions(opts []Option) options {
	o := options{
		clock:  clock.Real(),
		runner: pool.Shared(),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces the real clock, typically with a fake in tests.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithRunner runs the schedule loop on r instead of the shared pool.
func WithRunner(r Runner) Option {
	return func(o *options) {
		if r != nil {
			o.runner = r
		}
	}
}

// WithLogger sets the logger for lifecycle events. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrict sets the Timer strict flag. It is stored and reported by
// Timer.Strict but does not change timing.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
