package memorial

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
)

type memorialGetterSrv struct {
	repo port.MemorialRepository
}

// compile-time check: *memorialGetterSrv must satisfy port.MemorialGetter
var _ port.MemorialGetter = (*memorialGetterSrv)(nil)

// NewMemorialGetter constructs a MemorialGetter implementation.
func NewMemorialGetter(repo port.MemorialRepository) port.MemorialGetter {
	return &memorialGetterSrv{repo: repo}
}

func (s *memorialGetterSrv) GetMemorial(ctx context.Context, slug string) (*model.Memorial, error) {
	memorial, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemorialNotFound
		}
		return nil, err
	}
	return memorial, nil
}
