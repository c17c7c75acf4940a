package ticker

import (
	"errors"
	"fmt"

	"github.com/mathershifter/ticker/internal/pool"
)

// Terminal outcomes reported by Wait. Match them with errors.Is; the
// Timer and Ticker variants wrap ErrExpired and ErrStopped.
var (
	ErrExpired = errors.New("expired")
	ErrStopped = errors.New("stopped")

	ErrTimerExpired  = fmt.Errorf("timer %w", ErrExpired)
	ErrTimerStopped  = fmt.Errorf("timer %w", ErrStopped)
	ErrTickerExpired = fmt.Errorf("ticker %w", ErrExpired)
	ErrTickerStopped = fmt.Errorf("ticker %w", ErrStopped)
)

var (
	// ErrInvalidConfig is returned by NewTicker for an interval that is
	// not positive or exceeds the timeout, or an unbounded timeout.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("already started")

	// ErrFault is wrapped in the Stopped error of a controller whose
	// schedule loop panicked.
	ErrFault = errors.New("schedule loop fault")

	// Runner rejections, returned by Start.
	ErrPoolSaturated = pool.ErrSaturated
	ErrPoolClosed    = pool.ErrClosed
)

// variant names a controller kind and its terminal errors.
type variant struct {
	kind    string
	expired error
	stopped error
}

var (
	timerVariant  = variant{kind: "timer", expired: ErrTimerExpired, stopped: ErrTimerStopped}
	tickerVariant = variant{kind: "ticker", expired: ErrTickerExpired, stopped: ErrTickerStopped}
)
