package comment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/memorial"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type commentListerSrv struct {
	memorials port.MemorialRepository
	comments  port.CommentRepository
}

// compile-time check: *commentListerSrv must satisfy port.CommentLister
var _ port.CommentLister = (*commentListerSrv)(nil)

// NewCommentLister constructs a CommentLister implementation.
func NewCommentLister(memorials port.MemorialRepository, comments port.CommentRepository) port.CommentLister {
	return &commentListerSrv{memorials: memorials, comments: comments}
}

// ListComments returns one page of a memorial's comments, newest first.
// Out-of-range page and limit values are clamped rather than rejected.
func (s *commentListerSrv) ListComments(ctx context.Context, in port.ListCommentsInput) (*port.ListCommentsOutput, error) {
	m, err := s.memorials.GetBySlug(ctx, in.Slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, memorial.ErrMemorialNotFound
		}
		return nil, err
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	comments, total, err := s.comments.ListByMemorialID(ctx, m.ID, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := (total + limit - 1) / limit
	return &port.ListCommentsOutput{
		Comments:   comments,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
