package queue

import (
	"context"
	"sync"
)

// Signal is a closable, unbounded FIFO with blocking receive.
//
// Push never blocks. Receive parks until an item arrives, the queue is
// closed and drained, or the caller's context is done.
//
// Wakeups use a one-slot ready channel rather than sync.Cond so that
// Receive can also select on a context. A receiver that takes an item
// and sees more behind it passes the wakeup on to the next receiver.
type Signal[T any] struct {
	mu     sync.Mutex
	items  ring[T]
	closed bool

	ready chan struct{} // capacity 1, "an item may be available"
	done  chan struct{} // closed by Close
}

// NewSignal creates an empty, open Signal.
func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{
		items: newRing[T](minRingSize),
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Push adds an item to the queue.
// Returns false, dropping the item, if the queue is closed.
func (s *Signal[T]) Push(v T) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.items.push(v)
	s.mu.Unlock()

	s.notify()
	return true
}

// Pop removes and returns the oldest item without blocking.
// Returns false if the queue is empty.
func (s *Signal[T]) Pop() (T, bool) {
	s.mu.Lock()
	v, ok := s.items.pop()
	more := s.items.len() > 0
	s.mu.Unlock()

	if more {
		s.notify()
	}
	return v, ok
}

// Receive blocks until an item is available and returns it.
//
// Items queued before Close are still returned after Close. Once the
// queue is closed and empty, Receive returns ErrClosed. If ctx is done
// first, Receive returns ctx.Err().
func (s *Signal[T]) Receive(ctx context.Context) (T, error) {
	var zero T
	for {
		s.mu.Lock()
		if v, ok := s.items.pop(); ok {
			more := s.items.len() > 0
			s.mu.Unlock()
			if more {
				s.notify()
			}
			return v, nil
		}
		if s.closed {
			s.mu.Unlock()
			return zero, ErrClosed
		}
		s.mu.Unlock()

		select {
		case <-s.ready:
		case <-s.done:
		case <-ctx.Done():
			// The wakeup may have been meant for this receiver; hand it on.
			if s.Len() > 0 {
				s.notify()
			}
			return zero, ctx.Err()
		}
	}
}

// Close marks the queue closed and wakes every parked receiver.
// Safe to call multiple times.
func (s *Signal[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}

// Closed reports whether Close has been called.
func (s *Signal[T]) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Len returns the number of queued items.
func (s *Signal[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.len()
}

// Done returns a channel that is closed when the queue is closed.
func (s *Signal[T]) Done() <-chan struct{} {
	return s.done
}

// notify wakes at most one parked receiver. Non-blocking: if a wakeup
// is already pending, it covers this item too.
func (s *Signal[T]) notify() {
	select {
	case s.ready <- struct{}{}:
	default:
	}
}
