package port

import (
	"context"
)

// TaskDispatcher enqueues asynchronous tasks related to storage cleanup.
type TaskDispatcher interface {
	EnqueuePurgeMemorialMedia(ctx context.Context, prefix string) error
}
