package port

import (
	"context"
	"io"
)

// Storage defines blob storage operations against the memorials bucket.
type Storage interface {
	InitBucket() error
	SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
	RemoveFile(ctx context.Context, fileKey string) error
	// ListPrefix returns the keys of every object stored under prefix,
	// following storage-side pagination until exhausted.
	ListPrefix(ctx context.Context, prefix string) ([]string, error)
	// RemoveFiles deletes the given keys in a single bulk call.
	RemoveFiles(ctx context.Context, fileKeys []string) error
	// PublicURL returns the durable public URL for a stored object.
	PublicURL(fileKey string) string
}
