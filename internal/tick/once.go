package tick

import (
	"context"
	"time"

	"github.com/mathershifter/ticker/internal/clock"
)

// Once fires a single instant after a timeout.
//
// The wait is one interruptible sleep, not a polling loop. With an
// Unbounded (negative) timeout it never fires on its own; only a
// cancelled context ends it.
type Once struct {
	clock   clock.Clock
	timeout time.Duration
	fired   bool
}

// NewOnce creates a one-shot schedule. Any negative timeout is
// treated as Unbounded.
func NewOnce(c clock.Clock, timeout time.Duration) *Once {
	if timeout < 0 {
		timeout = Unbounded
	}
	return &Once{
		clock:   c,
		timeout: timeout,
	}
}

// Next sleeps for the timeout and returns the wake instant as Final.
// Calling Next again after it fired returns Cancelled.
func (o *Once) Next(ctx context.Context) (clock.Instant, Step) {
	if o.fired {
		return 0, Cancelled
	}
	if err := o.clock.Sleep(ctx, o.timeout); err != nil {
		return 0, Cancelled
	}
	o.fired = true
	return o.clock.Now(), Final
}

// Timeout returns the configured timeout, or Unbounded.
func (o *Once) Timeout() time.Duration {
	return o.timeout
}
