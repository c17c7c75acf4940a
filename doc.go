// Package ticker provides deadline and interval signals that any number of
// goroutines can wait on.
//
// A Timer fires once after a timeout. A Ticker fires immediately and then
// every interval until the elapsed time exceeds its timeout. Both are
// Controllers: Start launches one background schedule loop, Wait blocks
// for the next instant, and Stop ends the loop early.
//
// When the loop is over, Wait reports why through its error:
//
//	t := ticker.NewTimer(2 * ticker.Second)
//	if err := t.Start(); err != nil {
//		return err
//	}
//	defer t.Stop()
//
//	at, err := t.Wait()  // fires after ~2s
//	_, err = t.Wait()    // errors.Is(err, ticker.ErrExpired)
//
// A controller stopped before its deadline reports ErrStopped instead,
// even if it would have expired a moment later.
//
// Schedule loops run on a bounded pool shared by the process. Use
// WithRunner to give a group of controllers their own limit.
package ticker
