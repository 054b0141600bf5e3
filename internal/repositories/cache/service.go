// Package cache wraps Redis behind a small JSON cache used for content
// reads (courses, service packages) and wizard sessions.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CacheService provides JSON get/set over Redis with a default TTL.
type CacheService struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewCacheService creates a cache service.
func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{client: client, defaultTTL: defaultTTL}
}

// GetJSON reads a key and unmarshals it into dest.
func (s *CacheService) GetJSON(ctx context.Context, key string, dest interface{}) error {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(raw, dest)
}

// SetJSON marshals value and writes it with the given TTL (default TTL
// when ttl is zero).
func (s *CacheService) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	return s.client.Set(ctx, key, raw, ttl).Err()
}

// Delete removes keys.
func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// Close closes the underlying client.
func (s *CacheService) Close() error {
	return s.client.Close()
}
