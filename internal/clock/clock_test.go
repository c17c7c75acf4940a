package clock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mathershifter/ticker/internal/clock"
)

func TestInstantArithmetic(t *testing.T) {
	start := clock.Instant(1_000)
	later := start.Add(250 * time.Nanosecond)

	if got := later.Sub(start); got != 250*time.Nanosecond {
		t.Errorf("Sub() = %v, want 250ns", got)
	}
	if !start.Before(later) {
		t.Error("expected start.Before(later) = true")
	}
	if later.Before(start) {
		t.Error("expected later.Before(start) = false")
	}
	if later.Nanoseconds() != 1_250 {
		t.Errorf("Nanoseconds() = %d, want 1250", later.Nanoseconds())
	}
}

func TestRealNowMonotonic(t *testing.T) {
	c := clock.Real()
	prev := c.Now()
	for i := 0; i < 1000; i++ {
		now := c.Now()
		if now.Before(prev) {
			t.Fatalf("Now() went backward: %d < %d", now, prev)
		}
		prev = now
	}
}

func TestRealSleep(t *testing.T) {
	c := clock.Real()
	interval := 20 * time.Millisecond

	start := c.Now()
	if err := c.Sleep(context.Background(), interval); err != nil {
		t.Fatalf("Sleep() error = %v", err)
	}
	if elapsed := c.Now().Sub(start); elapsed < interval {
		t.Errorf("Sleep() returned after %v, want >= %v", elapsed, interval)
	}
}

func TestRealSleepInterrupted(t *testing.T) {
	testCases := []struct {
		name     string
		duration time.Duration
	}{
		{"Bounded", time.Hour},
		{"Unbounded", -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- clock.Real().Sleep(ctx, tc.duration) }()

			cancel()

			select {
			case err := <-done:
				if !errors.Is(err, context.Canceled) {
					t.Errorf("Sleep() error = %v, want context.Canceled", err)
				}
			case <-time.After(time.Second):
				t.Fatal("Sleep() did not return after cancel")
			}
		})
	}
}
