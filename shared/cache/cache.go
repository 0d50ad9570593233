package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"fmt"
	"reservo/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

// RedisCache holds short-lived counters. Reservation data is never cached; every
// read goes to the database.
type RedisCache interface {
	Increment(ctx context.Context, key string, windowSeconds int) (count int64, err error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Increment bumps the counter at key and starts its expiry window on the first hit.
func (cache *redisCache) Increment(ctx context.Context, key string, windowSeconds int) (count int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var incr *redis.IntCmd

	_, err = cache.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, time.Second*time.Duration(windowSeconds))

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to increment counter")

		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	return incr.Val(), nil
}

// TTL implements RedisCache.
func (cache *redisCache) TTL(ctx context.Context, key string) (ttl time.Duration, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".TTL")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	ttl, err = cache.client.TTL(ctx, key).Result()
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "TTL").Msg("failed to read ttl")

		return 0, fmt.Errorf("failed to get cache ttl: %w", err)
	}

	return ttl, nil
}
