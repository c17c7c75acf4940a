package tick

import (
	"context"
	"time"

	"github.com/mathershifter/ticker/internal/clock"
)

// Periodic fires every interval until the elapsed time exceeds the timeout.
//
// The first instant fires immediately, with no initial sleep. The
// deadline check happens right after an instant is taken and before
// sleeping, so the last instant may land at or slightly past the
// deadline; that instant is returned as Final.
//
// Unlike time.Ticker, Periodic sleeps a full interval after each
// instant is handed over, so a slow consumer delays rather than drops
// ticks.
type Periodic struct {
	clock    clock.Clock
	interval time.Duration
	timeout  time.Duration

	started bool
	done    bool
	start   clock.Instant
}

// NewPeriodic creates a periodic schedule.
//
// Returns ErrInvalidTimeout if timeout is negative (unbounded), and
// ErrInvalidInterval if interval is not positive or exceeds timeout.
func NewPeriodic(c clock.Clock, interval, timeout time.Duration) (*Periodic, error) {
	if timeout < 0 {
		return nil, ErrInvalidTimeout
	}
	if interval <= 0 || interval > timeout {
		return nil, ErrInvalidInterval
	}
	return &Periodic{
		clock:    c,
		interval: interval,
		timeout:  timeout,
	}, nil
}

// Next returns the next tick.
//
// The first call returns immediately. Later calls sleep for the
// interval first; a cancelled context during that sleep returns
// Cancelled.
func (p *Periodic) Next(ctx context.Context) (clock.Instant, Step) {
	if p.done {
		return 0, Cancelled
	}

	if p.started {
		if err := p.clock.Sleep(ctx, p.interval); err != nil {
			return 0, Cancelled
		}
	}

	now := p.clock.Now()
	if !p.started {
		p.started = true
		p.start = now
	}

	if now.Sub(p.start) > p.timeout {
		p.done = true
		return now, Final
	}
	return now, Continue
}

// Interval returns the tick interval.
func (p *Periodic) Interval() time.Duration {
	return p.interval
}

// Timeout returns the overall deadline.
func (p *Periodic) Timeout() time.Duration {
	return p.timeout
}
