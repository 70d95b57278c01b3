// Package pool provides reusable copy buffers to reduce allocations on
// download paths.
package pool

import (
	"io"
	"sync"
)

// copyBufferSize is the size of pooled copy buffers (64KB, matching the
// sweet spot for S3 response body streaming).
const copyBufferSize = 64 * 1024

var buffers = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, copyBufferSize)
		return &buf
	},
}

// Copy copies from src to dst using a pooled buffer and returns the number
// of bytes copied.
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	bufPtr := buffers.Get().(*[]byte)
	defer buffers.Put(bufPtr)
	return io.CopyBuffer(dst, src, *bufPtr)
}
