package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDeduper хранит ключи обработанных событий в redis.
type RedisDeduper struct {
	client      *redis.Client
	serviceName string
}

func NewRedisDeduper(client *redis.Client, serviceName string) *RedisDeduper {
	return &RedisDeduper{client: client, serviceName: serviceName}
}

func (r *RedisDeduper) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.key(key), time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim %s: %w", key, err)
	}
	return ok, nil
}

func (r *RedisDeduper) key(key string) string {
	return fmt.Sprintf("%s:dedup:%s", r.serviceName, key)
}
