package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisOpTimeout = 2 * time.Second

// RedisWindow counts submissions in Redis so every instance behind a load
// balancer observes the same per-identity state. Counter keys expire one
// window after the first submission, so limits reset in fixed windows rather
// than sliding ones.
type RedisWindow struct {
	client *redis.Client
	name   string
	limit  int
	window time.Duration
	logger *zap.Logger
}

// NewRedisWindow constructs a shared limiter named after its endpoint.
func NewRedisWindow(client *redis.Client, name string, limit int, window time.Duration, logger *zap.Logger) *RedisWindow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisWindow{
		client: client,
		name:   name,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

// Allow increments the identity's counter and compares it to the limit.
// Redis errors fail open.
func (w *RedisWindow) Allow(identity string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	key := fmt.Sprintf("ratelimit:%s:%s", w.name, identity)

	count, err := w.client.Incr(ctx, key).Result()
	if err != nil {
		w.logger.Warn("rate limit counter unavailable, allowing request",
			zap.String("key", key), zap.Error(err))
		return true
	}
	if count == 1 {
		if err := w.client.Expire(ctx, key, w.window).Err(); err != nil {
			w.logger.Warn("rate limit expiry not set",
				zap.String("key", key), zap.Error(err))
		}
	}

	return count <= int64(w.limit)
}
