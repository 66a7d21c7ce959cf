package memorial

import (
	"context"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
)

type memorialListerSrv struct {
	repo port.MemorialRepository
}

// compile-time check: *memorialListerSrv must satisfy port.MemorialLister
var _ port.MemorialLister = (*memorialListerSrv)(nil)

// NewMemorialLister constructs a MemorialLister implementation.
func NewMemorialLister(repo port.MemorialRepository) port.MemorialLister {
	return &memorialListerSrv{repo: repo}
}

func (s *memorialListerSrv) ListMemorials(ctx context.Context) ([]model.Memorial, error) {
	return s.repo.List(ctx)
}
