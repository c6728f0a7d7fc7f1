package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotExist is returned by Get when the key is missing or expired.
var ErrNotExist = errors.New("key does not exist")

// Cache is a whole-page cache: values are stored serialized for a bounded
// time and never invalidated by content changes, only by TTL or an explicit
// Clear.
type Cache interface {
	Get(ctx context.Context, key string, v any) error
	Set(ctx context.Context, key string, obj any, ttl time.Duration) error

	// Clear evicts every key matching the glob pattern, regardless of TTL.
	Clear(ctx context.Context, pattern string) error
}
