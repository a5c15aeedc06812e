package loader

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// CacheKey generates a unique cache key for a DocumentFile based on its ID
// and path.
func CacheKey(file DocumentFile) string {
	return file.ID + ":" + file.FilePath
}

// TextCache memoizes raw document bytes per file. Concurrent misses for the
// same file share one fetch.
type TextCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
	group   singleflight.Group
}

func NewTextCache() *TextCache {
	return &TextCache{entries: make(map[string][]byte)}
}

func (c *TextCache) lookup(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.entries[key]
	return b, ok
}

// Load returns the cached bytes for file or calls fetch once to fill them.
// Failed fetches are not cached.
func (c *TextCache) Load(file DocumentFile, fetch func() ([]byte, error)) ([]byte, error) {
	key := CacheKey(file)
	if b, ok := c.lookup(key); ok {
		return b, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		if b, ok := c.lookup(key); ok {
			return b, nil
		}
		b, err := fetch()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = b
		c.mu.Unlock()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

// Forget drops the cached bytes for file.
func (c *TextCache) Forget(file DocumentFile) {
	c.mu.Lock()
	delete(c.entries, CacheKey(file))
	c.mu.Unlock()
}

func (c *TextCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
