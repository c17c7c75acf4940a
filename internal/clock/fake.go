package clock

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Fake returns a FakeClock starting at the given instant. Time stands
// still until Advance is called.
//
// FakeClock is safe for concurrent use by multiple goroutines.
func Fake(start Instant) *FakeClock {
	clock := &FakeClock{current: start}
	clock.sleepersChanged = sync.NewCond(&clock.mu)
	return clock
}

// FakeClock is a deterministic Clock for tests. Sleeps block until the
// clock is advanced past their deadline or their context is cancelled.
//
// Use WaitForSleepers before Advance to make sure the goroutine under
// test has actually started sleeping; otherwise Advance may run first
// and the sleep would never see it.
type FakeClock struct {
	mu              sync.Mutex
	current         Instant
	sleepers        []*fakeSleeper
	sleepersChanged *sync.Cond
}

type fakeSleeper struct {
	deadline Instant

	// forever is set for negative durations. Such sleepers never fire
	// on Advance; only their context can wake them.
	forever bool

	wake chan struct{}
}

// Now returns the current fake instant.
func (c *FakeClock) Now() Instant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Sleep blocks until Advance moves the clock to at least now+d, or until
// ctx is done. A zero d returns immediately.
func (c *FakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d == 0 {
		return nil
	}

	sleeper := &fakeSleeper{wake: make(chan struct{})}
	c.mu.Lock()
	if d < 0 {
		sleeper.forever = true
	} else {
		sleeper.deadline = c.current.Add(d)
	}
	c.sleepers = append(c.sleepers, sleeper)
	c.sleepersChanged.Broadcast()
	c.mu.Unlock()

	select {
	case <-sleeper.wake:
		return nil
	case <-ctx.Done():
		c.remove(sleeper)
		return ctx.Err()
	}
}

// Advance moves the clock forward by d and wakes every sleeper whose
// deadline is now due, in deadline order.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)

	var due, remaining []*fakeSleeper
	for _, sleeper := range c.sleepers {
		if !sleeper.forever && !c.current.Before(sleeper.deadline) {
			due = append(due, sleeper)
		} else {
			remaining = append(remaining, sleeper)
		}
	}
	c.sleepers = remaining
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, sleeper := range due {
		close(sleeper.wake)
	}
}

// WaitForSleepers blocks until at least n sleeps are pending.
//
//	go controller.Start()
//	fake.WaitForSleepers(1)  // loop is now parked in Sleep
//	fake.Advance(time.Second)
func (c *FakeClock) WaitForSleepers(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for len(c.sleepers) < n {
		c.sleepersChanged.Wait()
	}
}

// Pending returns the number of goroutines currently sleeping.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sleepers)
}

// remove drops a sleeper whose context was cancelled.
func (c *FakeClock) remove(target *fakeSleeper) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, sleeper := range c.sleepers {
		if sleeper == target {
			c.sleepers = append(c.sleepers[:i], c.sleepers[i+1:]...)
			break
		}
	}
	c.sleepersChanged.Broadcast()
}
