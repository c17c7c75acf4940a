package pool_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/mathershifter/ticker/internal/pool"
)

// TestRace_ConcurrentGo hammers a small pool from many goroutines.
// Run with: go test -race ./internal/pool/...
func TestRace_ConcurrentGo(t *testing.T) {
	const limit = 8
	const callers = 64

	p := pool.New(limit)
	var peak, current atomic.Int64
	var admitted, rejected atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := p.Go(func() {
				n := current.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				current.Add(-1)
			})
			switch {
			case err == nil:
				admitted.Add(1)
			case errors.Is(err, pool.ErrSaturated):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if admitted.Load()+rejected.Load() != callers {
		t.Errorf("expected %d outcomes, got %d", callers, admitted.Load()+rejected.Load())
	}
	if peak.Load() > limit {
		t.Errorf("expected at most %d concurrent tasks, saw %d", limit, peak.Load())
	}
}
