package cancel

import (
	"context"
	"errors"
)

// ErrCanceled is the cause recorded by a plain Cancel.
var ErrCanceled = errors.New("cancel: canceled")

// ContextCanceler is a stop request backed by a context.Context.
//
// Done is a non-blocking check; Context exposes the same signal to code
// that blocks (sleeps, receives) so it can select on it. The first call
// to Cancel or CancelCause wins; its cause is kept for Cause.
type ContextCanceler struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// NewContext creates a ContextCanceler from a parent context.
// Cancelling the parent also cancels this canceler.
func NewContext(parent context.Context) *ContextCanceler {
	ctx, cancel := context.WithCancelCause(parent)
	return &ContextCanceler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Done returns true if the context has been cancelled.
//
// This performs a non-blocking select on ctx.Done().
func (c *ContextCanceler) Done() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Cancel triggers cancellation with ErrCanceled as the cause.
func (c *ContextCanceler) Cancel() {
	c.cancel(ErrCanceled)
}

// CancelCause triggers cancellation with the given cause.
// Has no effect if already cancelled.
func (c *ContextCanceler) CancelCause(cause error) {
	if cause == nil {
		cause = ErrCanceled
	}
	c.cancel(cause)
}

// Cause returns the cause passed to the first cancellation, or nil if
// not cancelled yet.
func (c *ContextCanceler) Cause() error {
	return context.Cause(c.ctx)
}

// Context returns the underlying context.Context.
// Pass it to blocking calls that must wake on cancellation.
func (c *ContextCanceler) Context() context.Context {
	return c.ctx
}
