// Package testutil holds bounded-wait helpers for tests that block on
// timers and tickers. Every helper fails the test instead of hanging
// when the awaited event never happens.
package testutil
