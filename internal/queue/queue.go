// Package queue provides the signal queue that carries instants from a
// schedule loop to its waiters.
//
// This package offers one implementation of the Queue interface:
//   - Signal: closable, unbounded, multi-consumer FIFO with blocking Receive
//
// # Close and drain
//
// Close is idempotent and never discards items. Items pushed before
// Close stay retrievable; Receive reports ErrClosed only once the queue
// is both closed and empty. Push after Close is silently dropped so a
// producer racing its own shutdown never fails.
//
// # Concurrency
//
// Any number of goroutines may Push, Pop, and Receive concurrently.
// Each item is delivered to exactly one receiver, in FIFO order.
package queue

import "errors"

// ErrClosed is returned by Receive once the queue is closed and drained.
var ErrClosed = errors.New("queue: closed")

// Queue is a non-blocking FIFO.
//
// Push returns false if the item was not accepted,
// Pop returns false if the queue is empty.
type Queue[T any] interface {
	// Push adds an item to the queue.
	// Returns false if the item was rejected.
	Push(T) bool

	// Pop removes and returns an item from the queue.
	// Returns false if the queue is empty.
	Pop() (T, bool)
}
