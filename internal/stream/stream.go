// Package stream provides byte stream adapters that satisfy the
// cmdtypes.ByteStream contract over ordinary Go readers and writers.
package stream

import (
	"io"
	"sync"
)

// Buffered adapts an io.Writer sink into a non-blocking byte stream. Incoming
// bytes are queued with Feed, or continuously by Pump running in its own
// goroutine, and handed out one at a time through Available and ReadByte.
// Writes pass straight through to the sink.
//
// Feed and Pump may run concurrently with the reading side; the pending queue
// is the only shared state and is locked. The reading side itself is single
// owner, matching the interpreter's cooperative model.
type Buffered struct {
	mu      sync.Mutex
	pending []byte
	sink    io.Writer
}

// New creates a stream that writes to sink. A nil sink discards all output.
func New(sink io.Writer) *Buffered {
	if sink == nil {
		sink = io.Discard
	}
	return &Buffered{sink: sink}
}

// Feed queues bytes for the reading side.
func (b *Buffered) Feed(p []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, p...)
}

// FeedString queues a string for the reading side.
func (b *Buffered) FeedString(s string) {
	b.Feed([]byte(s))
}

// Available reports the number of queued bytes.
func (b *Buffered) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// ReadByte consumes one queued byte. It returns io.EOF when the queue is
// empty rather than blocking for more input.
func (b *Buffered) ReadByte() (byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pending) == 0 {
		return 0, io.EOF
	}
	ch := b.pending[0]
	b.pending = b.pending[1:]
	return ch, nil
}

// Write sends bytes to the sink.
func (b *Buffered) Write(p []byte) (int, error) {
	return b.sink.Write(p)
}

// Pump copies r into the pending queue until r fails or reaches end of file.
// It blocks and is meant to run in its own goroutine alongside a polling
// loop. The returned error is nil on a clean end of file.
func (b *Buffered) Pump(r io.Reader) error {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			b.Feed(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
