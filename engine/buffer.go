package engine

import (
	"strings"
	"sync"
)

// bufferPool is a process-wide pool of reusable output buffers (spec.md §5:
// "a process-wide pool of reusable buffers is permitted as an optimization,
// with the rule that a pooled buffer is always emptied before acquisition
// and always returned cleared").
var bufferPool = sync.Pool{
	New: func() any {
		return new(strings.Builder)
	},
}

// GetBuffer retrieves an empty buffer from the pool.
func GetBuffer() *strings.Builder {
	b := bufferPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

// ReleaseBuffer clears buf and returns it to the pool. Callers must not use
// buf after calling ReleaseBuffer.
func ReleaseBuffer(b *strings.Builder) {
	if b == nil {
		return
	}
	b.Reset()
	bufferPool.Put(b)
}
