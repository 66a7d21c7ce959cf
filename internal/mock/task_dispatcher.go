package mock

import "context"

// Dispatcher implements task dispatching for tests.
type Dispatcher struct {
	PurgeCalled   bool
	PurgePrefixes []string
	PurgeErr      error
}

func (m *Dispatcher) EnqueuePurgeMemorialMedia(ctx context.Context, prefix string) error {
	m.PurgeCalled = true
	m.PurgePrefixes = append(m.PurgePrefixes, prefix)
	return m.PurgeErr
}
