package cache

import (
	"context"
	"time"

	"github.com/fhuszti/memorials-ms-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetMemorialDetails(ctx context.Context, slug string) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagMemorialDetails(ctx context.Context, slug string) (string, error) {
	return "", nil
}

func (n *NoopCache) SetMemorialDetails(ctx context.Context, slug string, data []byte, ttl time.Duration) {
}

func (n *NoopCache) SetEtagMemorialDetails(ctx context.Context, slug string, etag string, ttl time.Duration) {
}

func (n *NoopCache) DeleteMemorialDetails(ctx context.Context, slug string) error { return nil }

func (n *NoopCache) DeleteEtagMemorialDetails(ctx context.Context, slug string) error {
	return nil
}
