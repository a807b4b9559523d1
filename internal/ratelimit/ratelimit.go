// Package ratelimit ограничивает частоту изменяющих запросов фиксированным окном в Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter struct {
	redis  *redis.Client
	prefix string
	now    func() time.Time
}

// NewLimiter подключается к Redis по URL и проверяет соединение.
func NewLimiter(ctx context.Context, redisURL string) (*Limiter, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &Limiter{redis: client, prefix: "scroom:rl", now: time.Now}, nil
}

// Allow увеличивает счётчик ключа в текущем окне. Возвращает true, пока счётчик не превысил limit.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error) {
	windowKey := l.windowKey(key, window)

	pipe := l.redis.Pipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("rate limit %s: %w", key, err)
	}

	count := int(incr.Val())
	return count <= limit, count, nil
}

func (l *Limiter) windowKey(key string, window time.Duration) string {
	seconds := int64(window / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, l.now().Unix()/seconds)
}

func (l *Limiter) Close() error {
	return l.redis.Close()
}
