// Command channel compares the signal queue with a buffered channel.
//
// Usage:
//
//	go run ./cmd/channel -n 10000000 --size 1024
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/mathershifter/ticker/internal/queue"
)

func main() {
	flagSet := pflag.NewFlagSet("channel", pflag.ContinueOnError)
	iterations := flagSet.IntP("iterations", "n", 10_000_000, "number of iterations")
	size := flagSet.Int("size", 1024, "channel buffer size")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	n := *iterations

	fmt.Printf("Benchmarking push + receive (%d iterations, chan size=%d)\n", n, *size)
	fmt.Println("─────────────────────────────────────────────────")

	// Buffered channel, same goroutine
	ch := make(chan int, *size)
	start := time.Now()
	for i := 0; i < n; i++ {
		ch <- i
		<-ch
	}
	chDur := time.Since(start)

	// Signal queue, same goroutine
	q := queue.NewSignal[int]()
	ctx := context.Background()
	start = time.Now()
	for i := 0; i < n; i++ {
		q.Push(i)
		if _, err := q.Receive(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	sigDur := time.Since(start)

	// Signal queue, producer and consumer on separate goroutines
	q = queue.NewSignal[int]()
	consumed := make(chan int)
	go func() {
		count := 0
		for {
			if _, err := q.Receive(ctx); err != nil {
				consumed <- count
				return
			}
			count++
		}
	}()
	start = time.Now()
	for i := 0; i < n; i++ {
		q.Push(i)
	}
	q.Close()
	got := <-consumed
	pipeDur := time.Since(start)

	// Results
	chPerOp := float64(chDur.Nanoseconds()) / float64(n)
	sigPerOp := float64(sigDur.Nanoseconds()) / float64(n)
	pipePerOp := float64(pipeDur.Nanoseconds()) / float64(n)

	fmt.Printf("\nResults:\n")
	fmt.Printf("  Channel:          %v (%.2f ns/op)\n", chDur, chPerOp)
	fmt.Printf("  Signal:           %v (%.2f ns/op)\n", sigDur, sigPerOp)
	fmt.Printf("  Signal pipeline:  %v (%.2f ns/op, %d received)\n", pipeDur, pipePerOp, got)

	if sigPerOp < chPerOp {
		fmt.Printf("\n  Speedup:  %.2fx (Signal faster)\n", chPerOp/sigPerOp)
	} else {
		fmt.Printf("\n  Speedup:  %.2fx (Channel faster)\n", sigPerOp/chPerOp)
	}

	fmt.Printf("\nThroughput (theoretical max):\n")
	fmt.Printf("  Channel:  %.2f M ops/sec\n", 1000/chPerOp)
	fmt.Printf("  Signal:   %.2f M ops/sec\n", 1000/sigPerOp)
}
