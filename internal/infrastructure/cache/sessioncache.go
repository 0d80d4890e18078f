package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
)

const sessionKeyPrefix = "lexdoc:session:"

// RedisSessionCache stores resolved session contexts as JSON.
type RedisSessionCache struct {
	client *redis.Client
	prefix string
}

var _ session.Cache = (*RedisSessionCache)(nil)

func NewRedisSessionCache(client *redis.Client) *RedisSessionCache {
	return &RedisSessionCache{client: client, prefix: sessionKeyPrefix}
}

func (c *RedisSessionCache) Get(ctx context.Context, userSID string) (*session.Context, error) {
	data, err := c.client.Get(ctx, c.buildKey(userSID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session from redis: %w", err)
	}

	var sc session.Context
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sc, nil
}

func (c *RedisSessionCache) Set(ctx context.Context, sc *session.Context, ttl time.Duration) error {
	if sc == nil || sc.UserSID == "" {
		return errors.New("session user SID cannot be empty")
	}
	data, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := c.client.Set(ctx, c.buildKey(sc.UserSID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}
	return nil
}

func (c *RedisSessionCache) Invalidate(ctx context.Context, userSID string) error {
	if err := c.client.Del(ctx, c.buildKey(userSID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}

func (c *RedisSessionCache) buildKey(userSID string) string {
	return c.prefix + userSID
}
