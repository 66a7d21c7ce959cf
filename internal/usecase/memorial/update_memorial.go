package memorial

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
)

type memorialUpdaterSrv struct {
	repo  port.MemorialRepository
	media port.MediaProcessor
	cache port.Cache
}

// compile-time check: *memorialUpdaterSrv must satisfy port.MemorialUpdater
var _ port.MemorialUpdater = (*memorialUpdaterSrv)(nil)

// NewMemorialUpdater constructs a MemorialUpdater implementation.
func NewMemorialUpdater(repo port.MemorialRepository, media port.MediaProcessor, cache port.Cache) port.MemorialUpdater {
	return &memorialUpdaterSrv{repo: repo, media: media, cache: cache}
}

// UpdateMemorial applies a partial update. Media fields present in the
// input are re-run through the pipeline under the target slug; absent
// fields keep their stored values. Repeated updates leave older objects
// behind in storage on purpose; they are reclaimed when the memorial's
// whole prefix is purged at deletion.
func (s *memorialUpdaterSrv) UpdateMemorial(ctx context.Context, slug string, in port.UpdateMemorialInput) (*model.Memorial, error) {
	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemorialNotFound
		}
		return nil, err
	}

	targetSlug := existing.Slug
	if in.Slug != nil && *in.Slug != existing.Slug {
		exists, err := s.repo.ExistsSlug(ctx, *in.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrSlugTaken
		}
		targetSlug = *in.Slug
	}

	updated := *existing
	updated.Slug = targetSlug
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.Biography != nil {
		updated.Biography = *in.Biography
	}
	if in.ThemeColour != nil {
		updated.ThemeColour = *in.ThemeColour
	}
	if in.BirthYear != nil {
		updated.BirthYear = in.BirthYear
	}
	if in.DeathYear != nil {
		updated.DeathYear = in.DeathYear
	}
	if in.DeathCause != nil {
		updated.DeathCause = in.DeathCause
	}

	if in.MainPhoto != nil {
		mainURL, err := s.media.ProcessOne(ctx, targetSlug, port.MediaKindMain, *in.MainPhoto)
		if err != nil {
			return nil, err
		}
		updated.MainPhotoURL = mainURL
	}
	if in.GalleryPhotos != nil {
		photoURLs, err := s.media.ProcessBatch(ctx, targetSlug, port.MediaKindGallery, in.GalleryPhotos)
		if err != nil {
			return nil, err
		}
		updated.GalleryPhotos = photoURLs
	}
	if in.GalleryVideos != nil {
		videoURLs, err := s.media.ProcessBatch(ctx, targetSlug, port.MediaKindVideo, in.GalleryVideos)
		if err != nil {
			return nil, err
		}
		updated.GalleryVideos = videoURLs
	}

	updated.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateBySlug(ctx, slug, &updated); err != nil {
		return nil, err
	}

	s.invalidate(ctx, slug)
	if targetSlug != slug {
		s.invalidate(ctx, targetSlug)
	}
	return &updated, nil
}

func (s *memorialUpdaterSrv) invalidate(ctx context.Context, slug string) {
	if err := s.cache.DeleteMemorialDetails(ctx, slug); err != nil {
		log.Printf("failed deleting cache for memorial %q: %v", slug, err)
	}
	if err := s.cache.DeleteEtagMemorialDetails(ctx, slug); err != nil {
		log.Printf("failed deleting etag cache for memorial %q: %v", slug, err)
	}
}
