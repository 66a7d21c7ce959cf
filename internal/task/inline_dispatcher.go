package task

import (
	"context"

	"github.com/fhuszti/memorials-ms-go/internal/port"
)

// InlineDispatcher runs storage purges synchronously, for deployments
// without a Redis queue.
type InlineDispatcher struct {
	purger port.PrefixPurger
}

var _ port.TaskDispatcher = (*InlineDispatcher)(nil)

func NewInlineDispatcher(purger port.PrefixPurger) *InlineDispatcher {
	return &InlineDispatcher{purger: purger}
}

func (d *InlineDispatcher) EnqueuePurgeMemorialMedia(ctx context.Context, prefix string) error {
	return d.purger.PurgePrefix(ctx, prefix)
}
