package cache

import (
	"context"
	"encoding/json"
	"path"
	"testing"
	"time"

	"github.com/plume-lab/backend/pkg/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// storeBackedMock returns a mock redis client over a plain map, enough to
// drive every path of the redis cache backend.
func storeBackedMock(store map[string][]byte) *testutil.MockRedisClient {
	return &testutil.MockRedisClient{
		SetObjFunc: func(ctx context.Context, key string, obj any, ttl time.Duration) error {
			b, err := json.Marshal(obj)
			if err != nil {
				return err
			}

			store[key] = b
			return nil
		},
		GetObjFunc: func(ctx context.Context, key string, v any) error {
			b, ok := store[key]
			if !ok {
				return redis.Nil
			}

			return json.Unmarshal(b, v)
		},
		KeysFunc: func(ctx context.Context, pattern string) ([]string, error) {
			var keys []string
			for key := range store {
				if ok, err := path.Match(pattern, key); err == nil && ok {
					keys = append(keys, key)
				}
			}

			return keys, nil
		},
		DelFunc: func(ctx context.Context, keys ...string) error {
			for _, key := range keys {
				delete(store, key)
			}

			return nil
		},
	}
}

func TestRedisCacheSetGet(t *testing.T) {
	ctx := context.Background()
	store := map[string][]byte{}
	c := NewRedisCache(storeBackedMock(store))

	// A missing key maps redis.Nil onto ErrNotExist.
	var got map[string]int
	require.ErrorIs(t, c.Get(ctx, "timeline:1", &got), ErrNotExist)

	require.NoError(t, c.Set(ctx, "timeline:1", map[string]int{"posts": 3}, 20*time.Second))
	require.NoError(t, c.Get(ctx, "timeline:1", &got))
	require.Equal(t, 3, got["posts"])
}

func TestRedisCacheClear(t *testing.T) {
	ctx := context.Background()
	store := map[string][]byte{}
	c := NewRedisCache(storeBackedMock(store))

	require.NoError(t, c.Set(ctx, "timeline:1", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "timeline:2", 2, time.Minute))
	require.NoError(t, c.Set(ctx, "other:1", 3, time.Minute))

	require.NoError(t, c.Clear(ctx, "timeline:*"))

	var got int
	require.ErrorIs(t, c.Get(ctx, "timeline:1", &got), ErrNotExist)
	require.ErrorIs(t, c.Get(ctx, "timeline:2", &got), ErrNotExist)
	require.NoError(t, c.Get(ctx, "other:1", &got))
	require.Equal(t, 3, got)

	// Clearing an empty keyspace is a no-op.
	require.NoError(t, c.Clear(ctx, "timeline:*"))
}
