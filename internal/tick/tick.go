// Package tick provides the schedules that drive timers and tickers.
//
// This package offers two implementations of the Schedule interface:
//   - Once: sleep for a timeout, then fire a single final instant
//   - Periodic: fire immediately, then every interval, until the
//     elapsed time exceeds a timeout
//
// A schedule only decides when to fire. The loop that calls Next, and
// delivers the instants to waiters, lives in the ticker package. All
// waiting happens inside Clock.Sleep with the caller's context, so a
// cancelled context interrupts a schedule mid-sleep.
package tick

import (
	"context"
	"errors"
	"time"

	"github.com/mathershifter/ticker/internal/clock"
)

// Schedule configuration errors.
var (
	ErrInvalidInterval = errors.New("tick: interval must be > 0 and <= timeout")
	ErrInvalidTimeout  = errors.New("tick: periodic schedule needs a bounded timeout")
)

// Unbounded is the timeout of a schedule with no deadline.
const Unbounded time.Duration = -1

// Step tells the driving loop what to do with the instant Next returned.
type Step uint8

const (
	// Continue means emit the instant and call Next again.
	Continue Step = iota

	// Final means emit the instant; the schedule has run its course.
	Final

	// Cancelled means the context was cancelled; emit nothing.
	Cancelled
)

// String returns a human-readable step name.
func (s Step) String() string {
	switch s {
	case Continue:
		return "CONTINUE"
	case Final:
		return "FINAL"
	case Cancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// Schedule produces the instants a controller emits.
//
// A Schedule is single-use and is driven by exactly one goroutine.
type Schedule interface {
	// Next blocks until the next instant is due and returns it with the
	// step to take. It returns Cancelled as soon as ctx is done.
	Next(ctx context.Context) (clock.Instant, Step)

	// Timeout returns the schedule's overall deadline, or Unbounded.
	Timeout() time.Duration
}
