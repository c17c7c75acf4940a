package ticker

import (
	"fmt"
	"time"

	"github.com/mathershifter/ticker/internal/tick"
)

// Ticker fires immediately and then every interval, until the time since
// the first tick exceeds the timeout.
//
// The check runs right after each tick is taken, so the last tick can
// land at or a little past the deadline. That tick is delivered and the
// Ticker then expires.
type Ticker struct {
	*Controller
	interval time.Duration
}

// NewTicker creates an idle Ticker. It fails with ErrInvalidConfig if
// interval is not positive, interval exceeds timeout, or timeout is
// Unbounded.
func NewTicker(interval, timeout time.Duration, opts ...Option) (*Ticker, error) {
	o := buildOptions(opts)
	schedule, err := tick.NewPeriodic(o.clock, interval, timeout)
	if err != nil {
		return nil, fmt.Errorf("%w: interval %v, timeout %v: %w", ErrInvalidConfig, interval, timeout, err)
	}
	return &Ticker{
		Controller: newController(tickerVariant, schedule, o),
		interval:   interval,
	}, nil
}

// Interval returns the time between ticks.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}
