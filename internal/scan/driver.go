// internal/scan/driver.go
package scan

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"motifscan/internal/corpus"
	"motifscan/internal/output"
)

// Options configures a scan run.
type Options struct {
	Threads  int  // worker goroutines; 0 = all CPUs
	Grain    int  // partition width in bytes; 0 = corpus.DefaultGrain
	NoHeader bool // suppress the header line
}

// Run writes the output header, partitions the corpus, and scores all
// ranges on a fixed worker pool. Workers pull ranges from a shared
// channel, so uneven per-range match density balances itself without a
// scheduler. Each worker owns one Buffer and flushes it exactly once,
// when the jobs channel drains; the header therefore precedes every
// match line, and no cross-worker line order is guaranteed.
func Run(ctx context.Context, s *Scanner, out io.Writer, opt Options) error {
	if !opt.NoHeader {
		if _, err := fmt.Fprintln(out, output.Header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	threads := opt.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}

	ranges := corpus.Partition(s.Corpus.Len(), opt.Grain)
	sink := NewSink(out)
	jobs := make(chan corpus.Range, threads*2)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < threads; w++ {
		g.Go(func() error {
			buf := sink.NewBuffer()
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case r, ok := <-jobs:
					if !ok {
						return buf.Flush()
					}
					if err := s.ScanRange(r, buf); err != nil {
						return err
					}
				}
			}
		})
	}
	g.Go(func() error {
		defer close(jobs)
		for _, r := range ranges {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- r:
			}
		}
		return nil
	})
	return g.Wait()
}
