package ticker

import "sync"

// Lifecycle is anything that can be started and stopped; Timer and
// Ticker both qualify.
type Lifecycle interface {
	Start() error
	Stop()
}

// With starts l, runs fn, and always stops l afterwards, including when
// Start fails or fn panics.
//
//	err := ticker.With(tkr, func(tkr *ticker.Ticker) error {
//		for !tkr.Done() {
//			if _, err := tkr.Wait(); err != nil {
//				return err
//			}
//		}
//		return nil
//	})
func With[L Lifecycle](l L, fn func(L) error) error {
	defer l.Stop()
	if err := l.Start(); err != nil {
		return err
	}
	return fn(l)
}

// Acquire starts l and returns a func that stops it. The release func is
// never nil and may be called more than once, so it can be deferred
// before checking err.
func Acquire(l Lifecycle) (release func(), err error) {
	var once sync.Once
	release = func() { once.Do(l.Stop) }
	if err := l.Start(); err != nil {
		release()
		return release, err
	}
	return release, nil
}
