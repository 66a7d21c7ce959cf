package comment

import (
	"context"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/uuid"
)

type mockMemorialRepo struct {
	memorial *model.Memorial
	getErr   error
}

func (m *mockMemorialRepo) List(ctx context.Context) ([]model.Memorial, error) { return nil, nil }
func (m *mockMemorialRepo) GetBySlug(ctx context.Context, slug string) (*model.Memorial, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.memorial, nil
}
func (m *mockMemorialRepo) ExistsSlug(ctx context.Context, slug string) (bool, error) {
	return false, nil
}
func (m *mockMemorialRepo) Insert(ctx context.Context, memorial *model.Memorial) error { return nil }
func (m *mockMemorialRepo) UpdateBySlug(ctx context.Context, slug string, memorial *model.Memorial) error {
	return nil
}
func (m *mockMemorialRepo) DeleteBySlug(ctx context.Context, slug string) error { return nil }

type mockCommentRepo struct {
	comments  []model.Comment
	total     int
	listErr   error
	createErr error

	listedPage  int
	listedLimit int
	listedID    uuid.UUID
	created     *model.Comment
}

func (m *mockCommentRepo) ListByMemorialID(ctx context.Context, memorialID uuid.UUID, page, limit int) ([]model.Comment, int, error) {
	m.listedID = memorialID
	m.listedPage = page
	m.listedLimit = limit
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return m.comments, m.total, nil
}
func (m *mockCommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	m.created = comment
	return m.createErr
}
