package memorial

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/media"
)

type memorialDeleterSrv struct {
	repo       port.MemorialRepository
	dispatcher port.TaskDispatcher
	cache      port.Cache
}

// compile-time check: *memorialDeleterSrv must satisfy port.MemorialDeleter
var _ port.MemorialDeleter = (*memorialDeleterSrv)(nil)

// NewMemorialDeleter constructs a MemorialDeleter implementation.
func NewMemorialDeleter(repo port.MemorialRepository, dispatcher port.TaskDispatcher, cache port.Cache) port.MemorialDeleter {
	return &memorialDeleterSrv{repo: repo, dispatcher: dispatcher, cache: cache}
}

// DeleteMemorial purges the memorial's whole storage namespace and removes
// the record. Storage cleanup is best-effort: a failed purge is logged and
// the record is deleted anyway, catalog correctness beats zero orphans.
func (s *memorialDeleterSrv) DeleteMemorial(ctx context.Context, slug string) error {
	if _, err := s.repo.GetBySlug(ctx, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMemorialNotFound
		}
		return err
	}

	prefix := media.MemorialPrefix(slug)
	if err := s.dispatcher.EnqueuePurgeMemorialMedia(ctx, prefix); err != nil {
		log.Printf("failed to purge storage prefix %q: %v", prefix, err)
	}

	if err := s.repo.DeleteBySlug(ctx, slug); err != nil {
		return err
	}

	if err := s.cache.DeleteMemorialDetails(ctx, slug); err != nil {
		log.Printf("failed deleting cache for memorial %q: %v", slug, err)
	}
	if err := s.cache.DeleteEtagMemorialDetails(ctx, slug); err != nil {
		log.Printf("failed deleting etag cache for memorial %q: %v", slug, err)
	}
	return nil
}
