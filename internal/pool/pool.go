// Package pool admits schedule loops onto goroutines under a fixed limit.
//
// Every timer or ticker runs its schedule loop on its own goroutine. A
// Pool caps how many of those loops may be live at once and refuses new
// ones instead of queueing them, so Start on a saturated pool fails fast.
package pool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/mathershifter/ticker/internal/cancel"
	"github.com/mathershifter/ticker/internal/metrics"
)

// DefaultLimit is the size of the Shared pool.
const DefaultLimit = 1 << 16

var (
	ErrSaturated = errors.New("pool: too many live schedule loops")
	ErrClosed    = errors.New("pool: closed")
)

// Runner launches a task on its own goroutine.
type Runner interface {
	// Go starts task and returns without waiting for it. It returns an
	// error, and does not run task, if the task cannot be admitted.
	Go(task func()) error
}

// Pool is a Runner that allows at most Limit tasks at a time.
type Pool struct {
	sem    *semaphore.Weighted
	limit  int64
	active atomic.Int64
	closed cancel.Flag
}

// New creates a Pool. A limit below 1 uses DefaultLimit.
func New(limit int) *Pool {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Pool{
		sem:   semaphore.NewWeighted(int64(limit)),
		limit: int64(limit),
	}
}

var shared = sync.OnceValue(func() *Pool { return New(DefaultLimit) })

// Shared returns the process-wide pool used when no runner is configured.
func Shared() *Pool {
	return shared()
}

// Go runs task on a new goroutine if a slot is free.
//
// It never blocks: a full pool returns ErrSaturated and a closed pool
// returns ErrClosed. Calls made while Wait is blocked may also see
// ErrSaturated.
func (p *Pool) Go(task func()) error {
	if p.closed.IsSet() {
		metrics.PoolRejections.WithLabelValues(metrics.ReasonClosed).Inc()
		return ErrClosed
	}
	if !p.sem.TryAcquire(1) {
		metrics.PoolRejections.WithLabelValues(metrics.ReasonSaturated).Inc()
		return ErrSaturated
	}

	p.active.Add(1)
	metrics.ActiveLoops.Inc()
	go func() {
		defer func() {
			p.active.Add(-1)
			metrics.ActiveLoops.Dec()
			p.sem.Release(1)
		}()
		task()
	}()
	return nil
}

// Active returns the number of tasks currently running.
func (p *Pool) Active() int {
	return int(p.active.Load())
}

// Limit returns the maximum number of concurrent tasks.
func (p *Pool) Limit() int {
	return int(p.limit)
}

// Close stops the pool from admitting new tasks. Running tasks are not
// affected. Close is idempotent.
func (p *Pool) Close() {
	p.closed.Set()
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	return p.closed.IsSet()
}

// Wait blocks until no task is running or ctx is done.
func (p *Pool) Wait(ctx context.Context) error {
	if err := p.sem.Acquire(ctx, p.limit); err != nil {
		return err
	}
	p.sem.Release(p.limit)
	return nil
}
