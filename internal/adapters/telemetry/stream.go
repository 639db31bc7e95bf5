// Package telemetry adapts OpenTelemetry spans to the tsload renderer.
package telemetry

import (
	"bytes"
	"errors"
	"sync"
	"time"
)

const (
	// DefaultChunkSize is the buffered byte count that forces delivery.
	DefaultChunkSize = 4096
	// DefaultDelay is how long output may wait before it is delivered.
	DefaultDelay = 50 * time.Millisecond
)

// ErrStreamClosed is returned by Write after Close.
var ErrStreamClosed = errors.New("log stream is closed")

// LogStream coalesces the output a span writes and hands it to a sink.
// Output is delivered once the buffer holds the chunk size, ending at the last
// complete line when there is one, or after the delay that starts with the
// first undelivered write. It is safe for concurrent use.
type LogStream struct {
	chunkSize int
	delay     time.Duration
	sink      func([]byte)

	mu     sync.Mutex
	buf    []byte
	timer  *time.Timer
	closed bool
}

// NewLogStream creates a stream. Non-positive arguments select the defaults.
func NewLogStream(chunkSize int, delay time.Duration, sink func([]byte)) *LogStream {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &LogStream{chunkSize: chunkSize, delay: delay, sink: sink}
}

// Write buffers p.
func (s *LogStream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrStreamClosed
	}

	s.buf = append(s.buf, p...)
	if len(s.buf) >= s.chunkSize {
		n := len(s.buf)
		if i := bytes.LastIndexByte(s.buf, '\n'); i >= 0 {
			n = i + 1
		}
		s.deliverLocked(n)
	}

	if len(s.buf) > 0 && s.timer == nil {
		s.timer = time.AfterFunc(s.delay, s.Flush)
	}
	return len(p), nil
}

// Flush delivers everything buffered.
func (s *LogStream) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	if !s.closed {
		s.deliverLocked(len(s.buf))
	}
}

// Close delivers the remaining output. Later writes fail. It is idempotent.
func (s *LogStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.stopTimerLocked()
	s.deliverLocked(len(s.buf))
	return nil
}

func (s *LogStream) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// deliverLocked hands the first n buffered bytes to the sink. The sink runs
// under the lock so chunks arrive in order.
func (s *LogStream) deliverLocked(n int) {
	if n == 0 {
		return
	}
	chunk := bytes.Clone(s.buf[:n])
	s.buf = append(s.buf[:0], s.buf[n:]...)
	if s.sink != nil {
		s.sink(chunk)
	}
}
