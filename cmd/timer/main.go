// Command timer runs a single Timer and reports how it ended.
//
// Usage:
//
//	go run ./cmd/timer --timeout 2s
//	go run ./cmd/timer --unbounded    # waits for Ctrl-C
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

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
	flagSet := pflag.NewFlagSet("timer", pflag.ContinueOnError)
	flags.AddFlags(flagSet)
	strict := flagSet.Bool("strict", false, "set the timer strict flag")
	showVersion := flagSet.Bool("version", false, "print version and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if *showVersion {
		fmt.Println("timer", version.Full())
		return nil
	}

	cfg, err := flags.Load(flagSet)
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogJSON, cfg.LogLevel)
	defer writeMetrics(log, cfg.MetricsFile)

	timeout := cfg.Timeout
	if cfg.Unbounded {
		timeout = ticker.Unbounded
	}
	tmr := ticker.NewTimer(timeout, ticker.WithLogger(log), ticker.WithStrict(*strict))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	context.AfterFunc(ctx, tmr.Stop)

	release, err := ticker.Acquire(tmr)
	defer release()
	if err != nil {
		return err
	}

	if tmr.Timeout() == ticker.Unbounded {
		fmt.Println("Timer (unbounded): press Ctrl-C to stop")
	} else {
		fmt.Printf("Timer (timeout=%v, strict=%v)\n", tmr.Timeout(), tmr.Strict())
	}
	fmt.Println("─────────────────────────────────────────────────")

	start := ticker.RealClock().Now()
	if at, err := tmr.Wait(); err == nil {
		fmt.Printf("  fired after %v\n", at.Sub(start))
	}

	_, err = tmr.Wait()
	switch {
	case errors.Is(err, ticker.ErrExpired):
		fmt.Println("  outcome: expired")
	case errors.Is(err, ticker.ErrStopped):
		fmt.Printf("  outcome: stopped after %v\n", ticker.RealClock().Now().Sub(start))
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
