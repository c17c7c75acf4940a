// Package clock provides the monotonic time source used by schedule loops.
//
// Production code uses Real(), which reads the runtime's monotonic clock.
// Tests use Fake(), which only moves when Advance is called, so schedules
// can be driven tick by tick without sleeping.
//
// Every sleep goes through Clock.Sleep, which takes a context. Cancelling
// the context wakes the sleeper immediately; this is how Stop interrupts a
// schedule that is waiting for its next deadline.
package clock

import (
	"context"
	"time"
)

// Instant is a point on the monotonic timeline, in nanoseconds.
//
// Instants are only meaningful relative to other Instants from the same
// Clock. They are not tied to wall-clock or calendar time.
type Instant int64

// Sub returns the duration t-u.
func (t Instant) Sub(u Instant) time.Duration {
	return time.Duration(t - u)
}

// Add returns t+d.
func (t Instant) Add(d time.Duration) Instant {
	return t + Instant(d)
}

// Before reports whether t is before u.
func (t Instant) Before(u Instant) bool {
	return t < u
}

// Nanoseconds returns t as an integer nanosecond count.
func (t Instant) Nanoseconds() int64 {
	return int64(t)
}

// Clock is a monotonic time source with an interruptible sleep.
//
// Implementations must be safe for concurrent use.
type Clock interface {
	// Now returns the current instant. Never goes backward.
	Now() Instant

	// Sleep pauses the calling goroutine for d, or until ctx is done.
	// Returns nil if the full duration elapsed, ctx.Err() otherwise.
	// A negative d sleeps until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}
