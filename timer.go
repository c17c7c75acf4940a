package ticker

import (
	"time"

	"github.com/mathershifter/ticker/internal/tick"
)

// Timer fires a single instant once its timeout has elapsed.
//
// With a negative timeout (Unbounded) it never fires; Wait blocks until
// Stop and then returns ErrTimerStopped.
type Timer struct {
	*Controller
	strict bool
}

// NewTimer creates an idle Timer. Call Start to begin the countdown.
func NewTimer(timeout time.Duration, opts ...Option) *Timer {
	o := buildOptions(opts)
	return &Timer{
		Controller: newController(timerVariant, tick.NewOnce(o.clock, timeout), o),
		strict:     o.strict,
	}
}

// Strict returns the flag set with WithStrict.
func (t *Timer) Strict() bool {
	return t.strict
}
