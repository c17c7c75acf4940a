// Package cancel provides the one-way signals a schedule loop is built on.
//
// This package offers two types:
//   - ContextCanceler: the stop request. Its Context is handed to every
//     sleep, so cancelling wakes a sleeping loop immediately.
//   - Flag: a set-once atomic latch, used for "expired" and "closed"
//     markers that are read far more often than written.
//
// Both are safe for concurrent use and both are one-way: once set they
// stay set.
package cancel

// Canceler provides cancellation signaling to schedule loops.
//
// Implementations must be safe for concurrent use:
//   - Multiple goroutines may call Done() concurrently
//   - Cancel() may be called concurrently with Done()
type Canceler interface {
	// Done returns true if cancellation has been triggered.
	Done() bool

	// Cancel triggers cancellation. Safe to call multiple times.
	Cancel()
}
