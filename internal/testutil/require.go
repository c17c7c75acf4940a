package testutil

import (
	"fmt"
	"time"
)

// T is the subset of testing.TB the helpers need.
type T interface {
	Helper()
	Fatalf(format string, args ...any)
}

// RequireReceive reads one value from ch within timeout, or fails the test.
//
//	at := testutil.RequireReceive(t, ticks, time.Second, "waiting for tick")
func RequireReceive[V any](t T, ch <-chan V, timeout time.Duration, msgAndArgs ...any) V {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatalf("channel closed without sending a value: %s", formatMessage(msgAndArgs))
		}
		return v
	case <-time.After(timeout):
		t.Fatalf("timed out after %v: %s", timeout, formatMessage(msgAndArgs))
	}
	panic("unreachable")
}

// RequireReturn runs fn on another goroutine and returns its result, or
// fails the test if fn has not returned within timeout.
//
//	res := testutil.RequireReturn(t, func() error { return timer.Stop() }, time.Second, "stop")
func RequireReturn[V any](t T, fn func() V, timeout time.Duration, msgAndArgs ...any) V {
	t.Helper()
	ch := make(chan V, 1)
	go func() { ch <- fn() }()
	return RequireReceive(t, ch, timeout, msgAndArgs...)
}

// RequireBlocked fails the test if ch yields anything within d.
func RequireBlocked[V any](t T, ch <-chan V, d time.Duration, msgAndArgs ...any) {
	t.Helper()
	select {
	case v := <-ch:
		t.Fatalf("expected no value within %v, got %v: %s", d, v, formatMessage(msgAndArgs))
	case <-time.After(d):
	}
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}
