package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetMemorialDetails(ctx context.Context, slug string) ([]byte, error) {
	val, err := c.client.Get(ctx, getCacheKey(slug, false)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagMemorialDetails(ctx context.Context, slug string) (string, error) {
	val, err := c.client.Get(ctx, getCacheKey(slug, true)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetMemorialDetails(ctx context.Context, slug string, data []byte, ttl time.Duration) {
	log.Printf("creating cache entry for memorial %q...", slug)

	if err := c.client.Set(ctx, getCacheKey(slug, false), data, ttl).Err(); err != nil {
		log.Printf("redis set failed for memorial %q: %v", slug, err)
	}
}

func (c *Cache) SetEtagMemorialDetails(ctx context.Context, slug string, etag string, ttl time.Duration) {
	if err := c.client.Set(ctx, getCacheKey(slug, true), etag, ttl).Err(); err != nil {
		log.Printf("redis etag set failed for memorial %q: %v", slug, err)
	}
}

func (c *Cache) DeleteMemorialDetails(ctx context.Context, slug string) error {
	log.Printf("deleting cache entry for memorial %q...", slug)

	if err := c.client.Del(ctx, getCacheKey(slug, false)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteEtagMemorialDetails(ctx context.Context, slug string) error {
	if err := c.client.Del(ctx, getCacheKey(slug, true)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(slug string, etag bool) string {
	if etag {
		return "memorial_details_etag:" + slug
	}
	return "memorial_details:" + slug
}
