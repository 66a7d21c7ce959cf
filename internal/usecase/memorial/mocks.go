package memorial

import (
	"context"
	"fmt"
	"time"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
)

type mockRepo struct {
	memorial *model.Memorial

	listOut   []model.Memorial
	listErr   error
	getErr    error
	exists    bool
	existsErr error
	insertErr error
	updateErr error
	deleteErr error

	inserted    *model.Memorial
	updated     *model.Memorial
	updatedSlug string
	deletedSlug string
}

func (m *mockRepo) List(ctx context.Context) ([]model.Memorial, error) {
	return m.listOut, m.listErr
}
func (m *mockRepo) GetBySlug(ctx context.Context, slug string) (*model.Memorial, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.memorial, nil
}
func (m *mockRepo) ExistsSlug(ctx context.Context, slug string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.exists, nil
}
func (m *mockRepo) Insert(ctx context.Context, memorial *model.Memorial) error {
	m.inserted = memorial
	return m.insertErr
}
func (m *mockRepo) UpdateBySlug(ctx context.Context, slug string, memorial *model.Memorial) error {
	m.updatedSlug = slug
	m.updated = memorial
	return m.updateErr
}
func (m *mockRepo) DeleteBySlug(ctx context.Context, slug string) error {
	m.deletedSlug = slug
	return m.deleteErr
}

type mediaCall struct {
	slug  string
	kind  port.MediaKind
	items []string
}

type mockMedia struct {
	oneErr   error
	batchErr error

	oneCalls   []mediaCall
	batchCalls []mediaCall
}

var _ port.MediaProcessor = (*mockMedia)(nil)

func (m *mockMedia) ProcessOne(ctx context.Context, slug string, kind port.MediaKind, item string) (string, error) {
	m.oneCalls = append(m.oneCalls, mediaCall{slug: slug, kind: kind, items: []string{item}})
	if m.oneErr != nil {
		return "", m.oneErr
	}
	return fmt.Sprintf("https://cdn.example.com/memorial/%s/%s_0.webp", slug, kind), nil
}
func (m *mockMedia) ProcessBatch(ctx context.Context, slug string, kind port.MediaKind, items []string) ([]string, error) {
	m.batchCalls = append(m.batchCalls, mediaCall{slug: slug, kind: kind, items: items})
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	urls := make([]string, len(items))
	for i := range items {
		urls[i] = fmt.Sprintf("https://cdn.example.com/memorial/%s/%s_%d", slug, kind, i)
	}
	return urls, nil
}

type mockDispatcher struct {
	err      error
	prefixes []string
}

var _ port.TaskDispatcher = (*mockDispatcher)(nil)

func (m *mockDispatcher) EnqueuePurgeMemorialMedia(ctx context.Context, prefix string) error {
	m.prefixes = append(m.prefixes, prefix)
	return m.err
}

type mockCache struct {
	delErr         error
	deletedSlugs   []string
	deletedEtags   []string
	setSlugs       []string
	storedPayloads map[string][]byte
}

var _ port.Cache = (*mockCache)(nil)

func (m *mockCache) GetMemorialDetails(ctx context.Context, slug string) ([]byte, error) {
	return m.storedPayloads[slug], nil
}
func (m *mockCache) GetEtagMemorialDetails(ctx context.Context, slug string) (string, error) {
	return "", nil
}
func (m *mockCache) SetMemorialDetails(ctx context.Context, slug string, data []byte, ttl time.Duration) {
	m.setSlugs = append(m.setSlugs, slug)
}
func (m *mockCache) SetEtagMemorialDetails(ctx context.Context, slug string, etag string, ttl time.Duration) {
}
func (m *mockCache) DeleteMemorialDetails(ctx context.Context, slug string) error {
	m.deletedSlugs = append(m.deletedSlugs, slug)
	return m.delErr
}
func (m *mockCache) DeleteEtagMemorialDetails(ctx context.Context, slug string) error {
	m.deletedEtags = append(m.deletedEtags, slug)
	return m.delErr
}
