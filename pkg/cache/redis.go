package cache

import (
	"context"
	"errors"
	"time"

	"github.com/plume-lab/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client xredis.Client
}

func NewRedisCache(client xredis.Client) *redisCache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, v any) error {
	if err := c.client.GetObj(ctx, key, v); err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotExist
		}

		return err
	}

	return nil
}

func (c *redisCache) Set(ctx context.Context, key string, obj any, ttl time.Duration) error {
	return c.client.SetObj(ctx, key, obj, ttl)
}

func (c *redisCache) Clear(ctx context.Context, pattern string) error {
	keys, err := c.client.Keys(ctx, pattern)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	return c.client.Del(ctx, keys...)
}
