// Command ticker runs a Ticker and prints every tick until it expires.
//
// Usage:
//
//	go run ./cmd/ticker --interval 1s --timeout 5s
//
// Ctrl-C stops the ticker early.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/mathershifter/ticker"
	"github.com/mathershifter/ticker/internal/config"
	"github.com/mathershifter/ticker/internal/logging"
	"github.com/mathershifter/ticker/internal/metrics"
	"github.com/mathershifter/ticker/internal/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags config.Flags
	flagSet := pflag.NewFlagSet("ticker", pflag.ContinueOnError)
	flags.AddFlags(flagSet)
	showVersion := flagSet.Bool("version", false, "print version and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if *showVersion {
		fmt.Println("ticker", version.Full())
		return nil
	}

	cfg, err := flags.Load(flagSet)
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogJSON, cfg.LogLevel)
	defer writeMetrics(log, cfg.MetricsFile)

	tkr, err := ticker.NewTicker(cfg.Interval, cfg.Timeout, ticker.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	context.AfterFunc(ctx, tkr.Stop)

	fmt.Printf("Ticker (interval=%v, timeout=%v)\n", tkr.Interval(), tkr.Timeout())
	fmt.Println("─────────────────────────────────────────────────")

	var first ticker.Instant
	n := 0
	err = ticker.With(tkr, func(tkr *ticker.Ticker) error {
		for {
			at, err := tkr.Wait()
			if err != nil {
				return err
			}
			if n == 0 {
				first = at
			}
			fmt.Printf("  tick %3d  +%v\n", n, at.Sub(first).Round(time.Millisecond))
			n++
		}
	})

	switch {
	case errors.Is(err, ticker.ErrExpired):
		fmt.Printf("\nExpired after %d ticks\n", n)
	case errors.Is(err, ticker.ErrStopped):
		fmt.Printf("\nStopped after %d ticks\n", n)
	default:
		return err
	}
	return nil
}

func writeMetrics(log *slog.Logger, path string) {
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		log.Error("writing metrics textfile", "path", path, "error", err)
	}
}
