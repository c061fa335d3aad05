package services

import (
	"context"
	"errors"
	"time"

	"gofund/pkg/cache"
	"gofund/pkg/logger"
)

// CacheService is the cache port injected into domain services. Keys are
// grouped under tags; invalidation targets a tag, never a key pattern scan.
// The cache is a latency optimization only — no correctness depends on it.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration, tags ...string) error
	Delete(ctx context.Context, keys ...string) error
	InvalidateTag(ctx context.Context, tag string) error
}

// ErrCacheMiss reports a key that is not in the cache.
var ErrCacheMiss = cache.ErrCacheMiss

type redisCacheService struct {
	redis  *cache.RedisCache
	logger *logger.Logger
}

func NewCacheService(redis *cache.RedisCache, log *logger.Logger) CacheService {
	return &redisCacheService{redis: redis, logger: log}
}

func tagKey(tag string) string {
	return "tag:" + tag
}

func (s *redisCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	return s.redis.Get(ctx, key, dest)
}

func (s *redisCacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration, tags ...string) error {
	if err := s.redis.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	for _, tag := range tags {
		if err := s.redis.SAdd(ctx, tagKey(tag), key); err != nil {
			return err
		}
	}
	return nil
}

func (s *redisCacheService) Delete(ctx context.Context, keys ...string) error {
	return s.redis.Delete(ctx, keys...)
}

func (s *redisCacheService) InvalidateTag(ctx context.Context, tag string) error {
	members, err := s.redis.SMembers(ctx, tagKey(tag))
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil
		}
		return err
	}
	if len(members) > 0 {
		if err := s.redis.Delete(ctx, members...); err != nil {
			return err
		}
	}
	return s.redis.Delete(ctx, tagKey(tag))
}

// cachedLoad is a read-through helper: serve from cache when present,
// otherwise load, store under the tag, and return. Cache failures fall back
// to the loader; they are logged, never surfaced.
func cachedLoad[T any](ctx context.Context, c CacheService, log *logger.Logger, key, tag string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if c != nil {
		if err := c.Get(ctx, key, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, ErrCacheMiss) && log != nil {
			log.WithError(err).Warnf("cache read failed for %s", key)
		}
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if c != nil {
		if err := c.Set(ctx, key, value, ttl, tag); err != nil && log != nil {
			log.WithError(err).Warnf("cache write failed for %s", key)
		}
	}
	return value, nil
}
