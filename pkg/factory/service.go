package factory

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/votigram/waitlist-api/pkg/ratelimit"
)

type Cache interface {
	Ping(ctx context.Context) error
}

type RedisClientProvider interface {
	GetClient() *redis.Client
}

type RateLimiterFactory interface {
	CreateRateLimiter() ratelimit.RateLimiter
}

// DefaultRateLimiterFactory builds limiters backed by Redis when the cache
// exposes a client, falling back to the in-memory token bucket otherwise.
type DefaultRateLimiterFactory struct {
	config *ratelimit.RateLimitConfig
}

func NewDefaultRateLimiterFactory(requests int, window time.Duration, cache Cache, logger ratelimit.Logger) *DefaultRateLimiterFactory {
	var redisClient *redis.Client
	if cache != nil {
		if provider, ok := cache.(RedisClientProvider); ok {
			redisClient = provider.GetClient()
		}
	}

	return &DefaultRateLimiterFactory{
		config: &ratelimit.RateLimitConfig{
			Requests: requests,
			Window:   window,
			Redis:    redisClient,
			Logger:   logger,
		},
	}
}

func (f *DefaultRateLimiterFactory) CreateRateLimiter() ratelimit.RateLimiter {
	return ratelimit.NewRateLimiter(f.config)
}
