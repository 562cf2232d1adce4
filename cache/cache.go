// Package cache implements the bounded, concurrent pattern -> AST cache
// spec.md §4.2 describes: a map from pattern text to its parsed
// ast.Message, shared across goroutines, with a trivial eviction policy
// once capacity is exceeded (correctness never depends on retention).
package cache

import (
	"sync"
	"sync/atomic"

	"github.com/aretext/messageformat/ast"
)

// DefaultCapacity is the cache size spec.md §4.2 names: "Capacity default
// 1024".
const DefaultCapacity = 1024

// key distinguishes the same pattern string parsed with different ignoreTag
// settings (spec.md §4.2: "must be cached under distinct keys").
type key struct {
	pattern   string
	ignoreTag bool
}

// Cache is a bounded concurrent pattern -> AST cache. The zero value is not
// usable; construct with New. A nil *Cache is a valid "cache disabled"
// value: Get always misses and Put is a no-op, matching spec.md §4.2's
// "Cache may be disabled by configuration."
type Cache struct {
	capacity int
	size     int64
	entries  sync.Map // key -> ast.Message
}

// New constructs a Cache with the given capacity. A non-positive capacity
// disables the cache (every Get misses, every Put is a no-op).
func New(capacity int) *Cache {
	if capacity <= 0 {
		return nil
	}
	return &Cache{capacity: capacity}
}

// Get returns the cached AST for (pattern, ignoreTag), if present.
func (c *Cache) Get(pattern string, ignoreTag bool) (ast.Message, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.entries.Load(key{pattern, ignoreTag})
	if !ok {
		return nil, false
	}
	return v.(ast.Message), true
}

// Put inserts msg under (pattern, ignoreTag). Once the cache is at or over
// capacity, inserts of genuinely new keys are dropped silently (spec.md
// §4.2: "eviction policy when over capacity is permitted to be trivial:
// insert fails silently"); concurrent parses of the same pattern may both
// call Put, and either write winning is acceptable since the results are
// equal by value.
func (c *Cache) Put(pattern string, ignoreTag bool, msg ast.Message) {
	if c == nil {
		return
	}
	k := key{pattern, ignoreTag}
	if _, loaded := c.entries.Load(k); loaded {
		c.entries.Store(k, msg)
		return
	}
	if atomic.LoadInt64(&c.size) >= int64(c.capacity) {
		return
	}
	if _, loaded := c.entries.LoadOrStore(k, msg); !loaded {
		atomic.AddInt64(&c.size, 1)
	}
}
