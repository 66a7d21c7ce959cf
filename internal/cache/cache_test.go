package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func makeTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	// spin up in-memory Redis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	t.Cleanup(mr.Close)
	// point the real client at it
	rdb := redis.NewClient(&redis.Options{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
	})
	return &Cache{client: rdb}, mr
}

func TestGetSetDeleteMemorialDetails(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()
	slug := "jane_doe"
	payload := []byte(`{"slug":"jane_doe"}`)

	// 1) Cache miss
	got, err := c.GetMemorialDetails(ctx, slug)
	if err != nil {
		t.Fatalf("GetMemorialDetails miss: %v", err)
	}
	if got != nil {
		t.Errorf("GetMemorialDetails miss: got %s; want nil", got)
	}
	if etag, err := c.GetEtagMemorialDetails(ctx, slug); err != nil || etag != "" {
		t.Errorf("etag miss: got %q, %v; want empty, nil", etag, err)
	}

	// 2) Set + Get
	c.SetMemorialDetails(ctx, slug, payload, 5*time.Minute)
	c.SetEtagMemorialDetails(ctx, slug, "\"abcd1234\"", 5*time.Minute)
	if ttl := mr.TTL(getCacheKey(slug, false)); ttl < 4*time.Minute || ttl > 5*time.Minute+time.Second {
		t.Errorf("redis TTL = %v; want ~5m", ttl)
	}
	got, err = c.GetMemorialDetails(ctx, slug)
	if err != nil {
		t.Fatalf("GetMemorialDetails hit: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("roundtrip mismatch: got %s; want %s", got, payload)
	}
	if etag, _ := c.GetEtagMemorialDetails(ctx, slug); etag != "\"abcd1234\"" {
		t.Errorf("etag = %q; want %q", etag, "\"abcd1234\"")
	}

	// 3) Delete + miss again
	if err := c.DeleteMemorialDetails(ctx, slug); err != nil {
		t.Fatalf("DeleteMemorialDetails: %v", err)
	}
	if err := c.DeleteEtagMemorialDetails(ctx, slug); err != nil {
		t.Fatalf("DeleteEtagMemorialDetails: %v", err)
	}
	if got, _ := c.GetMemorialDetails(ctx, slug); got != nil {
		t.Errorf("after delete, GetMemorialDetails = %s; want nil", got)
	}
}

func TestGetMemorialDetails_RedisError(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	// Simulate Redis unreachable
	mr.Close()

	got, err := c.GetMemorialDetails(ctx, "jane_doe")
	if got != nil {
		t.Errorf("Expected nil on Redis error, got %s", got)
	}
	if err == nil || !strings.Contains(err.Error(), "redis get failed") {
		t.Errorf("Expected redis get failed error, got %v", err)
	}
}

func TestDeleteMemorialDetails_RedisError(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	mr.Close()

	if err := c.DeleteMemorialDetails(ctx, "jane_doe"); err == nil || !strings.Contains(err.Error(), "redis del failed") {
		t.Errorf("Expected redis del failed error, got %v", err)
	}
}
