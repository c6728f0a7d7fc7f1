package cache

import (
	"context"
	"encoding/json"
	"path"
	"time"

	"github.com/puzpuzpuz/xsync"
)

type memoryEntry struct {
	data      []byte
	expiredAt time.Time
}

type memoryCache struct {
	entries *xsync.MapOf[string, memoryEntry]
}

// NewMemoryCache returns an in-process Cache used when no redis address is
// configured. Values are stored serialized, so Get/Set semantics match the
// redis backend. Expired entries are dropped lazily on read.
func NewMemoryCache() *memoryCache {
	return &memoryCache{entries: xsync.NewMapOf[memoryEntry]()}
}

func (c *memoryCache) Get(ctx context.Context, key string, v any) error {
	entry, ok := c.entries.Load(key)
	if !ok {
		return ErrNotExist
	}

	if time.Now().After(entry.expiredAt) {
		c.entries.Delete(key)
		return ErrNotExist
	}

	return json.Unmarshal(entry.data, v)
}

func (c *memoryCache) Set(ctx context.Context, key string, obj any, ttl time.Duration) error {
	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	c.entries.Store(key, memoryEntry{data: b, expiredAt: time.Now().Add(ttl)})
	return nil
}

func (c *memoryCache) Clear(ctx context.Context, pattern string) error {
	c.entries.Range(func(key string, _ memoryEntry) bool {
		if ok, err := path.Match(pattern, key); err == nil && ok {
			c.entries.Delete(key)
		}

		return true
	})

	return nil
}
