// Package progress implements the byte-counting pipeline used by streaming
// uploads: a cumulative counter and an io.Reader decorator that reports each
// chunk to a callback before handing it to the consumer.
package progress

import (
	"io"
	"sync/atomic"
)

// Func receives the cumulative bytes observed and the declared total after
// each chunk. It runs on whatever goroutine drives the read; implementations
// must be cheap and must not retain the chunk.
type Func func(bytesObserved, totalBytes int64)

// Counter tracks cumulative bytes observed against a declared total.
// A Counter belongs to exactly one upload and is never reused.
type Counter struct {
	observed atomic.Int64
	total    int64
}

// NewCounter creates a counter for an upload whose content length is total.
// The total is the caller-declared length; it is fixed for the lifetime of
// the counter.
func NewCounter(total int64) *Counter {
	return &Counter{total: total}
}

// Observe atomically adds n to the observed byte count and returns the new
// cumulative value.
func (c *Counter) Observe(n int64) int64 {
	return c.observed.Add(n)
}

// Observed returns the cumulative bytes observed so far.
func (c *Counter) Observed() int64 {
	return c.observed.Load()
}

// Total returns the declared total for the upload.
func (c *Counter) Total() int64 {
	return c.total
}

// Percentage returns floor(observed*100/total). A zero or negative total
// yields 0 rather than dividing by zero.
func (c *Counter) Percentage() int {
	if c.total <= 0 {
		return 0
	}
	return int(c.observed.Load() * 100 / c.total)
}

// Reader decorates an io.Reader so that every chunk read through it is
// counted and reported before the consumer sees it. It forwards the
// delegate's bytes, ordering and errors unchanged: no buffering, no
// reordering, no retries. If the callback panics the read aborts; the
// decorator does not recover it.
type Reader struct {
	src     io.Reader
	counter *Counter
	fn      Func
}

// NewReader wraps src with the given counter and callback. fn may be nil,
// in which case the reader only counts.
func NewReader(src io.Reader, counter *Counter, fn Func) *Reader {
	return &Reader{src: src, counter: counter, fn: fn}
}

// Read reads from the delegate and reports the chunk. The callback fires
// after the bytes are in p but before Read returns, so it happens before the
// consumer can transmit them.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.src.Read(p)
	if n > 0 {
		observed := r.counter.Observe(int64(n))
		if r.fn != nil {
			r.fn(observed, r.counter.total)
		}
	}
	return n, err
}

// Counter exposes the underlying counter, mainly for tests and for callers
// that want the percentage after the fact.
func (r *Reader) Counter() *Counter {
	return r.counter
}
