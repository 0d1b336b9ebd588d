// internal/scan/buffer.go
package scan

import (
	"bytes"
	"io"
	"sync"
)

// Sink is the shared output destination for all workers. Its mutex is
// taken once per worker at flush time, never per match, so contention
// is bounded by worker count.
type Sink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSink wraps w as the shared match sink.
func NewSink(w io.Writer) *Sink { return &Sink{w: w} }

// Buffer accumulates one worker's formatted match lines in memory.
// Exactly one Buffer exists per worker goroutine for the worker's whole
// lifetime; only Flush touches shared state.
type Buffer struct {
	buf  bytes.Buffer
	sink *Sink
}

// NewBuffer returns a fresh worker buffer bound to the sink.
func (s *Sink) NewBuffer() *Buffer { return &Buffer{sink: s} }

// Write appends formatted output to the worker-private buffer.
func (b *Buffer) Write(p []byte) (int, error) { return b.buf.Write(p) }

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int { return b.buf.Len() }

// Flush drains the buffer into the sink under the sink lock. Called
// once, when the owning worker retires; per-worker output stays
// contiguous in the shared stream.
func (b *Buffer) Flush() error {
	if b.buf.Len() == 0 {
		return nil
	}
	b.sink.mu.Lock()
	defer b.sink.mu.Unlock()
	_, err := b.sink.w.Write(b.buf.Bytes())
	b.buf.Reset()
	return err
}
