// Package dispatch provides a hash-keyed lookup cache for string keys,
// mirroring the xxHash64-based metric-ID index pattern used throughout the
// codebase this module is built from: the map key is the 64-bit hash of the
// string, not the string itself. Every Get, Set and Delete computes that
// hash from the key it is given.
//
// Two distinct keys hashing to the same 64-bit value is astronomically
// unlikely but not impossible, so each bucket keeps a short collision chain
// and every lookup confirms the exact string before returning a hit — the
// hash only ever speeds up the common case, it never substitutes for it.
package dispatch

import "github.com/nilsbloom/binser/internal/hash"

type entry[V any] struct {
	key   string
	value V
}

// Cache maps string keys to values of type V via their xxHash64 digest.
type Cache[V any] struct {
	buckets map[uint64][]entry[V]
}

// New creates an empty Cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{buckets: make(map[uint64][]entry[V])}
}

// Get returns the value registered for key, if any.
func (c *Cache[V]) Get(key string) (V, bool) {
	for _, e := range c.buckets[hash.ID(key)] {
		if e.key == key {
			return e.value, true
		}
	}

	var zero V

	return zero, false
}

// Has reports whether key is registered.
func (c *Cache[V]) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Set registers or replaces the value for key.
func (c *Cache[V]) Set(key string, value V) {
	h := hash.ID(key)
	bucket := c.buckets[h]

	for i := range bucket {
		if bucket[i].key == key {
			bucket[i].value = value
			return
		}
	}

	c.buckets[h] = append(bucket, entry[V]{key: key, value: value})
}

// Delete removes key, if present.
func (c *Cache[V]) Delete(key string) {
	h := hash.ID(key)
	bucket := c.buckets[h]

	for i := range bucket {
		if bucket[i].key == key {
			c.buckets[h] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

// Len returns the total number of registered keys.
func (c *Cache[V]) Len() int {
	n := 0
	for _, bucket := range c.buckets {
		n += len(bucket)
	}

	return n
}
