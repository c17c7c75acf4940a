package ticker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/mathershifter/ticker/internal/cancel"
	"github.com/mathershifter/ticker/internal/clock"
	"github.com/mathershifter/ticker/internal/metrics"
	"github.com/mathershifter/ticker/internal/pool"
	"github.com/mathershifter/ticker/internal/queue"
	"github.com/mathershifter/ticker/internal/tick"
)

// Controller runs one schedule loop and hands its instants to waiters.
//
// Timer and Ticker embed a Controller; it is not constructed directly.
// All methods are safe for concurrent use. Each instant is delivered to
// exactly one Wait call, in the order produced.
type Controller struct {
	id       string
	variant  variant
	schedule tick.Schedule
	runner   pool.Runner
	log      *slog.Logger

	signals *queue.Signal[clock.Instant]
	stop    *cancel.ContextCanceler
	expired cancel.Flag
	started atomic.Bool

	// mu serializes the terminal transition. state and cause are written
	// before signals is closed, so a waiter that sees the close also sees
	// the outcome.
	mu    sync.Mutex
	state State
	cause error
}

func newController(v variant, s tick.Schedule, o options) *Controller {
	id := uuid.NewString()
	return &Controller{
		id:       id,
		variant:  v,
		schedule: s,
		runner:   o.runner,
		log:      o.logger.With("id", id, "kind", v.kind, "timeout", s.Timeout()),
		signals:  queue.NewSignal[clock.Instant](),
		stop:     cancel.NewContext(context.Background()),
	}
}

// Start launches the schedule loop. It returns ErrAlreadyStarted if
// called twice, or the runner's error if the loop could not be admitted;
// in that case the controller is Stopped.
//
// Start on a controller that was already stopped does nothing.
func (c *Controller) Start() error {
	if !c.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return nil
	}
	c.state = StateRunning
	c.mu.Unlock()

	if err := c.runner.Go(c.run); err != nil {
		c.log.Warn("schedule loop rejected", "error", err)
		c.finish(StateStopped, err, nil)
		return err
	}
	metrics.ControllersStarted.WithLabelValues(c.variant.kind).Inc()
	c.log.Debug("started")
	return nil
}

// Stop ends the schedule loop and closes the signal queue. Instants
// already queued can still be received. Stop is idempotent and has no
// effect once the controller has expired.
func (c *Controller) Stop() {
	c.finish(StateStopped, nil, nil)
}

// Wait blocks for the next instant. Once the loop is over and every
// queued instant has been received, it returns the variant's Expired or
// Stopped error, and keeps returning it.
//
// Wait on a controller that was never started blocks until Stop.
func (c *Controller) Wait() (Instant, error) {
	return c.WaitContext(context.Background())
}

// WaitContext is Wait, giving up with ctx.Err() when ctx is done.
func (c *Controller) WaitContext(ctx context.Context) (Instant, error) {
	at, err := c.signals.Receive(ctx)
	if err == nil {
		return at, nil
	}
	if errors.Is(err, queue.ErrClosed) {
		return 0, c.err()
	}
	return 0, err
}

// Done reports whether the loop has stopped, or been asked to.
func (c *Controller) Done() bool {
	return c.stop.Done() || c.signals.Closed() || c.expired.IsSet()
}

// Expired reports whether the schedule ran its full course.
func (c *Controller) Expired() bool {
	return c.expired.IsSet()
}

// Timeout returns the overall deadline, or Unbounded.
func (c *Controller) Timeout() time.Duration {
	return c.schedule.Timeout()
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ID returns the random identifier used in log records.
func (c *Controller) ID() string {
	return c.id
}

// Pending returns the number of instants queued but not yet received.
func (c *Controller) Pending() int {
	return c.signals.Len()
}

func (c *Controller) run() {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("schedule loop panicked", "panic", r)
			c.finish(StateStopped, fmt.Errorf("%w: %v", ErrFault, r), nil)
		}
	}()

	ctx := c.stop.Context()
	for !c.Done() {
		at, step := c.schedule.Next(ctx)
		switch step {
		case tick.Continue:
			c.emit(at)
		case tick.Final:
			c.finish(StateExpired, nil, func() { c.emit(at) })
			return
		default:
			c.finish(StateStopped, nil, nil)
			return
		}
	}
	c.finish(StateStopped, nil, nil)
}

func (c *Controller) emit(at clock.Instant) {
	if c.signals.Push(at) {
		metrics.SignalsEmitted.WithLabelValues(c.variant.kind).Inc()
	}
}

// finish moves the controller to a terminal state; only the first call
// counts. last, if set, runs after the state is recorded and before the
// queue is closed.
func (c *Controller) finish(state State, cause error, last func()) {
	c.mu.Lock()
	if c.state.Terminal() {
		c.mu.Unlock()
		return
	}
	c.state = state
	c.cause = cause
	if state == StateExpired {
		c.expired.Set()
	}
	if last != nil {
		last()
	}
	c.stop.CancelCause(cause)
	c.signals.Close()
	c.mu.Unlock()

	outcome := metrics.OutcomeStopped
	switch {
	case state == StateExpired:
		outcome = metrics.OutcomeExpired
	case errors.Is(cause, ErrFault):
		outcome = metrics.OutcomeFault
	}
	metrics.ControllersFinished.WithLabelValues(c.variant.kind, outcome).Inc()
	c.log.Debug("finished", "state", state, "error", cause)
}

// err is the terminal error Wait reports once the queue is drained.
func (c *Controller) err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateExpired {
		return c.variant.expired
	}
	if c.cause != nil {
		return fmt.Errorf("%w: %w", c.variant.stopped, c.cause)
	}
	return c.variant.stopped
}
