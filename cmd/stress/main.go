// Command stress starts many timers at once and reports how they ended.
//
// It shows how many schedule loops a process can hold and what happens
// when a pool runs out of room.
//
// Usage:
//
//	go run ./cmd/stress --count 1024 --timeout 1s
//	go run ./cmd/stress --count 5000 --max-loops 4096   # some are rejected
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/mathershifter/ticker"
	"github.com/mathershifter/ticker/internal/config"
	"github.com/mathershifter/ticker/internal/logging"
	"github.com/mathershifter/ticker/internal/metrics"
	"github.com/mathershifter/ticker/internal/version"
)

type outcomes struct {
	fired    atomic.Int64
	expired  atomic.Int64
	stopped  atomic.Int64
	rejected atomic.Int64
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags config.Flags
	flagSet := pflag.NewFlagSet("stress", pflag.ContinueOnError)
	flags.AddFlags(flagSet)
	showVersion := flagSet.Bool("version", false, "print version and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if *showVersion {
		fmt.Println("stress", version.Full())
		return nil
	}

	cfg, err := flags.Load(flagSet)
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogJSON, cfg.LogLevel)
	defer writeMetrics(log, cfg.MetricsFile)

	opts := []ticker.Option{ticker.WithLogger(log)}
	var pool *ticker.Pool
	if cfg.MaxLoops > 0 {
		pool = ticker.NewPool(cfg.MaxLoops)
		opts = append(opts, ticker.WithRunner(pool))
	}

	timeout := cfg.Timeout
	if cfg.Unbounded {
		timeout = ticker.Unbounded
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting %d timers (timeout=%v, max-loops=%d)\n", cfg.Count, timeout, cfg.MaxLoops)
	fmt.Println("─────────────────────────────────────────────────")

	var out outcomes
	var g errgroup.Group
	start := time.Now()

	for i := 0; i < cfg.Count; i++ {
		tmr := ticker.NewTimer(timeout, opts...)
		if err := tmr.Start(); err != nil {
			if errors.Is(err, ticker.ErrPoolSaturated) || errors.Is(err, ticker.ErrPoolClosed) {
				out.rejected.Add(1)
				continue
			}
			return err
		}
		context.AfterFunc(ctx, tmr.Stop)

		g.Go(func() error {
			return await(tmr, &out)
		})
	}
	launched := time.Since(start)

	if err := g.Wait(); err != nil {
		return err
	}
	total := time.Since(start)

	fmt.Printf("\nResults:\n")
	fmt.Printf("  Launched:  %v (%.2f µs/timer)\n", launched, float64(launched.Microseconds())/float64(cfg.Count))
	fmt.Printf("  Finished:  %v\n", total)
	fmt.Printf("  Fired:     %d\n", out.fired.Load())
	fmt.Printf("  Expired:   %d\n", out.expired.Load())
	fmt.Printf("  Stopped:   %d\n", out.stopped.Load())
	fmt.Printf("  Rejected:  %d\n", out.rejected.Load())
	if pool != nil {
		fmt.Printf("  Pool:      %d/%d live after run\n", pool.Active(), pool.Limit())
	}
	return nil
}

// await drains one timer and records how it ended.
func await(tmr *ticker.Timer, out *outcomes) error {
	for {
		_, err := tmr.Wait()
		switch {
		case err == nil:
			out.fired.Add(1)
		case errors.Is(err, ticker.ErrExpired):
			out.expired.Add(1)
			return nil
		case errors.Is(err, ticker.ErrStopped):
			out.stopped.Add(1)
			return nil
		default:
			return fmt.Errorf("timer %s: %w", tmr.ID(), err)
		}
	}
}

func writeMetrics(log *slog.Logger, path string) {
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		log.Error("writing metrics textfile", "path", path, "error", err)
	}
}
