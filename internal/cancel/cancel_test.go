package cancel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mathershifter/ticker/internal/cancel"
)

func TestContextCanceler(t *testing.T) {
	c := cancel.NewContext(context.Background())

	if c.Done() {
		t.Error("expected Done() = false before Cancel()")
	}
	if c.Cause() != nil {
		t.Errorf("expected Cause() = nil before Cancel(), got %v", c.Cause())
	}

	c.Cancel()

	if !c.Done() {
		t.Error("expected Done() = true after Cancel()")
	}
	if !errors.Is(c.Cause(), cancel.ErrCanceled) {
		t.Errorf("expected Cause() = ErrCanceled, got %v", c.Cause())
	}

	// Verify idempotent
	c.Cancel()
	if !c.Done() {
		t.Error("expected Done() = true after second Cancel()")
	}
}

func TestContextCanceler_FirstCauseWins(t *testing.T) {
	c := cancel.NewContext(context.Background())
	first := errors.New("first")

	c.CancelCause(first)
	c.CancelCause(errors.New("second"))
	c.Cancel()

	if !errors.Is(c.Cause(), first) {
		t.Errorf("expected Cause() = %v, got %v", first, c.Cause())
	}
}

func TestContextCanceler_NilCause(t *testing.T) {
	c := cancel.NewContext(context.Background())
	c.CancelCause(nil)

	if !errors.Is(c.Cause(), cancel.ErrCanceled) {
		t.Errorf("expected Cause() = ErrCanceled, got %v", c.Cause())
	}
}

func TestContextCanceler_Context(t *testing.T) {
	parent := context.Background()
	c := cancel.NewContext(parent)

	ctx := c.Context()
	if ctx == nil {
		t.Error("expected non-nil context")
	}

	// Context should not be done yet
	select {
	case <-ctx.Done():
		t.Error("expected context to not be done")
	default:
		// OK
	}

	c.Cancel()

	// Context should be done now
	select {
	case <-ctx.Done():
		// OK
	default:
		t.Error("expected context to be done after Cancel()")
	}
}

func TestContextCanceler_ParentCancel(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	c := cancel.NewContext(parent)

	cancelParent()

	if !c.Done() {
		t.Error("expected Done() = true after parent cancelled")
	}
}

func TestFlag(t *testing.T) {
	var f cancel.Flag

	if f.IsSet() {
		t.Error("expected IsSet() = false for zero Flag")
	}

	if !f.Set() {
		t.Error("expected first Set() = true")
	}
	if f.Set() {
		t.Error("expected second Set() = false")
	}
	if !f.IsSet() {
		t.Error("expected IsSet() = true after Set()")
	}
}

// Test that both implementations satisfy the interface
func TestCancelerInterface(t *testing.T) {
	testCases := []struct {
		name string
		c    cancel.Canceler
	}{
		{"Context", cancel.NewContext(context.Background())},
		{"Flag", &cancel.Flag{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.c.Done() {
				t.Error("expected Done() = false initially")
			}

			tc.c.Cancel()

			if !tc.c.Done() {
				t.Error("expected Done() = true after Cancel()")
			}
		})
	}
}
