package mock

import (
	"context"
	"time"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	MemorialOut []byte

	// etag values
	EtagMemorial string

	// errors
	GetMemorialErr     error
	GetEtagMemorialErr error
	DelMemorialErr     error
	DelEtagMemorialErr error

	// call flags
	GetMemorialCalled     bool
	GetEtagMemorialCalled bool
	SetMemorialCalled     bool
	SetEtagMemorialCalled bool
	DelMemorialCalled     bool
	DelEtagMemorialCalled bool
}

func (c *Cache) GetMemorialDetails(ctx context.Context, slug string) ([]byte, error) {
	c.GetMemorialCalled = true
	if c.GetMemorialErr != nil {
		return nil, c.GetMemorialErr
	}
	return c.MemorialOut, nil
}

func (c *Cache) GetEtagMemorialDetails(ctx context.Context, slug string) (string, error) {
	c.GetEtagMemorialCalled = true
	if c.GetEtagMemorialErr != nil {
		return "", c.GetEtagMemorialErr
	}
	return c.EtagMemorial, nil
}

func (c *Cache) SetMemorialDetails(ctx context.Context, slug string, data []byte, ttl time.Duration) {
	c.SetMemorialCalled = true
	c.MemorialOut = data
}

func (c *Cache) SetEtagMemorialDetails(ctx context.Context, slug string, etag string, ttl time.Duration) {
	c.SetEtagMemorialCalled = true
	c.EtagMemorial = etag
}

func (c *Cache) DeleteMemorialDetails(ctx context.Context, slug string) error {
	c.DelMemorialCalled = true
	return c.DelMemorialErr
}

func (c *Cache) DeleteEtagMemorialDetails(ctx context.Context, slug string) error {
	c.DelEtagMemorialCalled = true
	return c.DelEtagMemorialErr
}
