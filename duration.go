package ticker

import (
	"time"

	"github.com/mathershifter/ticker/internal/tick"
)

// Duration scale constants.
const (
	Second      = time.Second
	Millisecond = Second / 1000
	Microsecond = Millisecond / 1000
	Nanosecond  = Microsecond / 1000
	Minute      = 60 * Second
	Hour        = 60 * Minute
)

// Unbounded is a Timer timeout that never elapses. Any negative timeout
// means the same.
const Unbounded = tick.Unbounded
