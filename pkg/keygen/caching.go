package keygen

import "sync"

type cacheKey struct {
	salt string
	size int
}

// Caching memoises derived keys of a single Generator. It is safe for concurrent use.
type Caching struct {
	gen  *Generator
	mu   sync.RWMutex
	keys map[cacheKey][]byte
}

func NewCaching(gen *Generator) *Caching {
	return &Caching{
		gen:  gen,
		keys: make(map[cacheKey][]byte),
	}
}

// Key returns a copy of the cached key, deriving it on first use.
func (c *Caching) Key(salt string, size int) []byte {
	ck := cacheKey{salt: salt, size: size}

	c.mu.RLock()
	key, ok := c.keys[ck]
	c.mu.RUnlock()
	if ok {
		return append([]byte(nil), key...)
	}

	// Two goroutines may derive the same key concurrently; both results are identical.
	key = c.gen.Key(salt, size)

	c.mu.Lock()
	if cached, ok := c.keys[ck]; ok {
		key = cached
	} else {
		c.keys[ck] = key
	}
	c.mu.Unlock()

	return append([]byte(nil), key...)
}
