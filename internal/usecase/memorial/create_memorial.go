package memorial

import (
	"context"
	"log"
	"time"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
)

type memorialCreatorSrv struct {
	repo    port.MemorialRepository
	media   port.MediaProcessor
	uuidGen port.UUIDGen
}

// compile-time check: *memorialCreatorSrv must satisfy port.MemorialCreator
var _ port.MemorialCreator = (*memorialCreatorSrv)(nil)

// NewMemorialCreator constructs a MemorialCreator implementation.
func NewMemorialCreator(repo port.MemorialRepository, media port.MediaProcessor, uuidGen port.UUIDGen) port.MemorialCreator {
	return &memorialCreatorSrv{repo: repo, media: media, uuidGen: uuidGen}
}

// CreateMemorial runs every supplied media string through the ingestion
// pipeline, then inserts the record with the resulting URL lists. A failure
// in any media batch aborts the whole call before anything is persisted;
// objects already uploaded by the failed call stay behind as orphans until
// the memorial's prefix is purged.
func (s *memorialCreatorSrv) CreateMemorial(ctx context.Context, in port.CreateMemorialInput) (*model.Memorial, error) {
	exists, err := s.repo.ExistsSlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSlugTaken
	}

	mainURL, err := s.media.ProcessOne(ctx, in.Slug, port.MediaKindMain, in.MainPhoto)
	if err != nil {
		return nil, err
	}
	photoURLs, err := s.media.ProcessBatch(ctx, in.Slug, port.MediaKindGallery, in.GalleryPhotos)
	if err != nil {
		return nil, err
	}
	videoURLs, err := s.media.ProcessBatch(ctx, in.Slug, port.MediaKindVideo, in.GalleryVideos)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	memorial := &model.Memorial{
		ID:            s.uuidGen(),
		Name:          in.Name,
		Biography:     in.Biography,
		Slug:          in.Slug,
		MainPhotoURL:  mainURL,
		ThemeColour:   in.ThemeColour,
		GalleryPhotos: photoURLs,
		GalleryVideos: videoURLs,
		BirthYear:     in.BirthYear,
		DeathYear:     in.DeathYear,
		DeathCause:    in.DeathCause,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Insert(ctx, memorial); err != nil {
		return nil, err
	}

	log.Printf("created memorial %q with %d gallery photos and %d videos", memorial.Slug, len(photoURLs), len(videoURLs))
	return memorial, nil
}
