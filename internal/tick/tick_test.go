package tick_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mathershifter/ticker/internal/clock"
	"github.com/mathershifter/ticker/internal/tick"
)

const epoch = clock.Instant(1_000_000_000)

type result struct {
	at   clock.Instant
	step tick.Step
}

// next runs s.Next in a goroutine so the test can drive the fake clock.
func next(ctx context.Context, s tick.Schedule) <-chan result {
	out := make(chan result, 1)
	go func() {
		at, step := s.Next(ctx)
		out <- result{at, step}
	}()
	return out
}

func receive(t *testing.T, ch <-chan result) result {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(time.Second):
		t.Fatal("Next() did not return")
	}
	return result{}
}

func TestOnce(t *testing.T) {
	fake := clock.Fake(epoch)
	once := tick.NewOnce(fake, 5*time.Second)

	ch := next(context.Background(), once)
	fake.WaitForSleepers(1)
	fake.Advance(5 * time.Second)

	r := receive(t, ch)
	if r.step != tick.Final {
		t.Errorf("expected step FINAL, got %v", r.step)
	}
	if want := epoch.Add(5 * time.Second); r.at != want {
		t.Errorf("expected instant %v, got %v", want, r.at)
	}

	// Fires only once
	if _, step := once.Next(context.Background()); step != tick.Cancelled {
		t.Errorf("expected second Next() step CANCELLED, got %v", step)
	}
}

func TestOnce_ZeroTimeout(t *testing.T) {
	fake := clock.Fake(epoch)
	once := tick.NewOnce(fake, 0)

	at, step := once.Next(context.Background())
	if step != tick.Final {
		t.Errorf("expected step FINAL, got %v", step)
	}
	if at != epoch {
		t.Errorf("expected instant %v, got %v", epoch, at)
	}
}

func TestOnce_Unbounded(t *testing.T) {
	fake := clock.Fake(epoch)
	once := tick.NewOnce(fake, -42)

	if once.Timeout() != tick.Unbounded {
		t.Errorf("expected Timeout() = Unbounded, got %v", once.Timeout())
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch := next(ctx, once)
	fake.WaitForSleepers(1)

	// No amount of time fires an unbounded schedule
	fake.Advance(1000 * time.Hour)
	select {
	case r := <-ch:
		t.Fatalf("unbounded Once fired: %+v", r)
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	if r := receive(t, ch); r.step != tick.Cancelled {
		t.Errorf("expected step CANCELLED, got %v", r.step)
	}
}

func TestPeriodic_Validation(t *testing.T) {
	fake := clock.Fake(epoch)

	testCases := []struct {
		name     string
		interval time.Duration
		timeout  time.Duration
		want     error
	}{
		{"Valid", time.Second, 5 * time.Second, nil},
		{"EqualIntervalTimeout", time.Second, time.Second, nil},
		{"IntervalExceedsTimeout", 2 * time.Second, time.Second, tick.ErrInvalidInterval},
		{"ZeroInterval", 0, time.Second, tick.ErrInvalidInterval},
		{"NegativeInterval", -time.Second, time.Second, tick.ErrInvalidInterval},
		{"UnboundedTimeout", time.Second, tick.Unbounded, tick.ErrInvalidTimeout},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := tick.NewPeriodic(fake, tc.interval, tc.timeout)
			if !errors.Is(err, tc.want) {
				t.Fatalf("NewPeriodic() error = %v, want %v", err, tc.want)
			}
			if tc.want == nil {
				if p.Interval() != tc.interval {
					t.Errorf("Interval() = %v, want %v", p.Interval(), tc.interval)
				}
				if p.Timeout() != tc.timeout {
					t.Errorf("Timeout() = %v, want %v", p.Timeout(), tc.timeout)
				}
			}
		})
	}
}

// TestPeriodic_Sequence drives interval=1s, timeout=5s on an exact clock.
// Elapsed 5s does not exceed the timeout, so ticks land at 0..5s as
// CONTINUE and the tick at 6s is FINAL.
func TestPeriodic_Sequence(t *testing.T) {
	fake := clock.Fake(epoch)
	p, err := tick.NewPeriodic(fake, time.Second, 5*time.Second)
	if err != nil {
		t.Fatalf("NewPeriodic() error = %v", err)
	}

	// First tick is immediate
	at, step := p.Next(context.Background())
	if step != tick.Continue || at != epoch {
		t.Fatalf("first Next() = (%v, %v), want (%v, CONTINUE)", at, step, epoch)
	}

	for i := 1; i <= 6; i++ {
		ch := next(context.Background(), p)
		fake.WaitForSleepers(1)
		fake.Advance(time.Second)

		r := receive(t, ch)
		if want := epoch.Add(time.Duration(i) * time.Second); r.at != want {
			t.Errorf("tick %d: instant %v, want %v", i, r.at, want)
		}
		wantStep := tick.Continue
		if i == 6 {
			wantStep = tick.Final
		}
		if r.step != wantStep {
			t.Errorf("tick %d: step %v, want %v", i, r.step, wantStep)
		}
	}

	// Nothing after FINAL
	if _, step := p.Next(context.Background()); step != tick.Cancelled {
		t.Errorf("expected Next() after FINAL to be CANCELLED, got %v", step)
	}
}

func TestPeriodic_LateTickIsFinal(t *testing.T) {
	fake := clock.Fake(epoch)
	p, err := tick.NewPeriodic(fake, time.Second, 2*time.Second)
	if err != nil {
		t.Fatalf("NewPeriodic() error = %v", err)
	}
	p.Next(context.Background())

	// A sleep that overshoots the deadline still produces one last tick
	ch := next(context.Background(), p)
	fake.WaitForSleepers(1)
	fake.Advance(3 * time.Second)

	r := receive(t, ch)
	if r.step != tick.Final {
		t.Errorf("expected step FINAL, got %v", r.step)
	}
	if want := epoch.Add(3 * time.Second); r.at != want {
		t.Errorf("expected instant %v, got %v", want, r.at)
	}
}

func TestPeriodic_CancelDuringSleep(t *testing.T) {
	fake := clock.Fake(epoch)
	p, err := tick.NewPeriodic(fake, time.Second, time.Hour)
	if err != nil {
		t.Fatalf("NewPeriodic() error = %v", err)
	}
	p.Next(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	ch := next(ctx, p)
	fake.WaitForSleepers(1)
	cancel()

	if r := receive(t, ch); r.step != tick.Cancelled {
		t.Errorf("expected step CANCELLED, got %v", r.step)
	}
}

func TestStepString(t *testing.T) {
	testCases := []struct {
		step tick.Step
		want string
	}{
		{tick.Continue, "CONTINUE"},
		{tick.Final, "FINAL"},
		{tick.Cancelled, "CANCELLED"},
		{tick.Step(99), "UNKNOWN"},
	}
	for _, tc := range testCases {
		if got := tc.step.String(); got != tc.want {
			t.Errorf("Step(%d).String() = %q, want %q", tc.step, got, tc.want)
		}
	}
}

// Test that both implementations satisfy the interface
func TestScheduleInterface(t *testing.T) {
	fake := clock.Fake(epoch)
	periodic, err := tick.NewPeriodic(fake, time.Second, time.Minute)
	if err != nil {
		t.Fatalf("NewPeriodic() error = %v", err)
	}

	testCases := []struct {
		name     string
		schedule tick.Schedule
	}{
		{"Once", tick.NewOnce(fake, 0)},
		{"Periodic", periodic},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Both fire immediately on the first call
			at, step := tc.schedule.Next(context.Background())
			if step == tick.Cancelled {
				t.Error("expected first Next() to fire")
			}
			if at != fake.Now() {
				t.Errorf("expected instant %v, got %v", fake.Now(), at)
			}
		})
	}
}
