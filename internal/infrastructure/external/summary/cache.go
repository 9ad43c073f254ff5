package summary

import (
	"context"
	"time"
)

// Cache is the key-value surface used to memoize fetched summaries.
// The Redis client satisfies it.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
}

// cachedSource memoizes successful fetches by link so re-syncs within the
// TTL don't hit the collaborator again. Fetch failures are never cached.
type cachedSource struct {
	inner Source
	cache Cache
	ttl   time.Duration
}

// WithCache wraps a source with cache-aside memoization
func WithCache(inner Source, cache Cache, ttl time.Duration) Source {
	return &cachedSource{inner: inner, cache: cache, ttl: ttl}
}

func (s *cachedSource) Fetch(ctx context.Context, link string) (string, error) {
	key := "summary:" + link

	// Cache errors degrade to a direct fetch
	if text, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		return text, nil
	}

	text, err := s.inner.Fetch(ctx, link)
	if err != nil {
		return "", err
	}

	_ = s.cache.Set(ctx, key, text, s.ttl)
	return text, nil
}
