package cancel

import "sync/atomic"

// Flag is a set-once boolean latch.
//
// IsSet is a single atomic load, cheap enough to check on every loop
// iteration. The zero value is an unset Flag ready to use.
type Flag struct {
	set atomic.Bool
}

// IsSet returns true once Set has been called.
func (f *Flag) IsSet() bool {
	return f.set.Load()
}

// Set raises the flag.
//
// Returns true only for the call that changed it; subsequent calls are
// no-ops and return false.
func (f *Flag) Set() bool {
	return f.set.CompareAndSwap(false, true)
}

// Done is IsSet, so a Flag can be used as a Canceler.
func (f *Flag) Done() bool {
	return f.IsSet()
}

// Cancel is Set, so a Flag can be used as a Canceler.
func (f *Flag) Cancel() {
	f.Set()
}
