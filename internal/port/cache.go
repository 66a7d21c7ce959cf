package port

import (
	"context"
	"time"
)

// Cache provides caching capabilities for memorial retrieval.
type Cache interface {
	GetMemorialDetails(ctx context.Context, slug string) ([]byte, error)
	GetEtagMemorialDetails(ctx context.Context, slug string) (string, error)
	SetMemorialDetails(ctx context.Context, slug string, data []byte, ttl time.Duration)
	SetEtagMemorialDetails(ctx context.Context, slug string, etag string, ttl time.Duration)
	DeleteMemorialDetails(ctx context.Context, slug string) error
	DeleteEtagMemorialDetails(ctx context.Context, slug string) error
}
