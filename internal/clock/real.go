package clock

import (
	"context"
	"time"

	"github.com/aristanetworks/goarista/monotime"
)

// Real returns a Clock backed by the runtime monotonic clock.
//
// Now is a single runtime.nanotime read (via monotime), which is cheaper
// than time.Now and never observes wall-clock adjustments.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() Instant { return Instant(monotime.Now()) }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d < 0 {
		<-ctx.Done()
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
