package comment

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/memorial"
)

type commentCreatorSrv struct {
	memorials port.MemorialRepository
	comments  port.CommentRepository
	uuidGen   port.UUIDGen
}

// compile-time check: *commentCreatorSrv must satisfy port.CommentCreator
var _ port.CommentCreator = (*commentCreatorSrv)(nil)

// NewCommentCreator constructs a CommentCreator implementation.
func NewCommentCreator(memorials port.MemorialRepository, comments port.CommentRepository, uuidGen port.UUIDGen) port.CommentCreator {
	return &commentCreatorSrv{memorials: memorials, comments: comments, uuidGen: uuidGen}
}

// CreateComment posts an anonymous or named comment on a memorial.
func (s *commentCreatorSrv) CreateComment(ctx context.Context, in port.CreateCommentInput) (*model.Comment, error) {
	m, err := s.memorials.GetBySlug(ctx, in.Slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, memorial.ErrMemorialNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		ID:         s.uuidGen(),
		MemorialID: m.ID,
		Name:       in.Name,
		Text:       in.Text,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	log.Printf("new comment on memorial %q", in.Slug)
	return comment, nil
}
