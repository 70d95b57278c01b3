package testutil

import (
	"io"
	"sync"
)

// ProgressUpdate represents a single progress callback invocation.
type ProgressUpdate struct {
	BytesWritten int64
	TotalBytes   int64
}

// ProgressRecorder records progress callback invocations for assertions.
// It is safe for concurrent use; uploads may report from other goroutines.
type ProgressRecorder struct {
	mu      sync.Mutex
	updates []ProgressUpdate
}

// Record is a s3types.ProgressFunc-compatible method value.
func (r *ProgressRecorder) Record(bytesWritten, totalBytes int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, ProgressUpdate{BytesWritten: bytesWritten, TotalBytes: totalBytes})
}

// Updates returns a copy of the recorded invocations in order.
func (r *ProgressRecorder) Updates() []ProgressUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ProgressUpdate, len(r.updates))
	copy(out, r.updates)
	return out
}

// Last returns the most recent update and whether any were recorded.
func (r *ProgressRecorder) Last() (ProgressUpdate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.updates) == 0 {
		return ProgressUpdate{}, false
	}
	return r.updates[len(r.updates)-1], true
}

// ChunkReader yields its payload in fixed-size chunks so tests can control
// exactly how an upload body is split.
type ChunkReader struct {
	data      []byte
	chunkSize int
	off       int
}

// NewChunkReader creates a reader over data that returns at most chunkSize
// bytes per Read call.
func NewChunkReader(data []byte, chunkSize int) *ChunkReader {
	return &ChunkReader{data: data, chunkSize: chunkSize}
}

func (c *ChunkReader) Read(p []byte) (int, error) {
	if c.off >= len(c.data) {
		return 0, io.EOF
	}
	end := c.off + c.chunkSize
	if end > len(c.data) {
		end = len(c.data)
	}
	if max := c.off + len(p); end > max {
		end = max
	}
	n := copy(p, c.data[c.off:end])
	c.off += n
	return n, nil
}

// TrackingCloser wraps a reader and counts Close calls, for asserting the
// close-exactly-once guarantee.
type TrackingCloser struct {
	io.Reader
	mu     sync.Mutex
	closes int
}

// NewTrackingCloser wraps r.
func NewTrackingCloser(r io.Reader) *TrackingCloser {
	return &TrackingCloser{Reader: r}
}

// Close records the call.
func (t *TrackingCloser) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closes++
	return nil
}

// Closes returns how many times Close has been called.
func (t *TrackingCloser) Closes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closes
}
