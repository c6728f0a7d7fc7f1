package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "timeline:1", map[string]int{"posts": 3}, time.Minute))

	var got map[string]int
	require.NoError(t, c.Get(ctx, "timeline:1", &got))
	require.Equal(t, 3, got["posts"])

	err := c.Get(ctx, "timeline:2", &got)
	require.ErrorIs(t, err, ErrNotExist)
}

func TestMemoryCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "timeline:1", "stale", 10*time.Millisecond))

	var got string
	require.NoError(t, c.Get(ctx, "timeline:1", &got))

	time.Sleep(20 * time.Millisecond)
	err := c.Get(ctx, "timeline:1", &got)
	require.ErrorIs(t, err, ErrNotExist)
}

func TestMemoryCacheClear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "timeline:1", "a", time.Minute))
	require.NoError(t, c.Set(ctx, "timeline:2", "b", time.Minute))
	require.NoError(t, c.Set(ctx, "other:1", "c", time.Minute))

	require.NoError(t, c.Clear(ctx, "timeline:*"))

	var got string
	require.ErrorIs(t, c.Get(ctx, "timeline:1", &got), ErrNotExist)
	require.ErrorIs(t, c.Get(ctx, "timeline:2", &got), ErrNotExist)
	require.NoError(t, c.Get(ctx, "other:1", &got))
	require.Equal(t, "c", got)
}
