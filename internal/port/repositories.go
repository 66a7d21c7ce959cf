package port

import (
	"context"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/uuid"
)

// MemorialRepository defines persistence operations for memorials.
type MemorialRepository interface {
	List(ctx context.Context) ([]model.Memorial, error)
	GetBySlug(ctx context.Context, slug string) (*model.Memorial, error)
	ExistsSlug(ctx context.Context, slug string) (bool, error)
	Insert(ctx context.Context, memorial *model.Memorial) error
	UpdateBySlug(ctx context.Context, slug string, memorial *model.Memorial) error
	DeleteBySlug(ctx context.Context, slug string) error
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	ListByMemorialID(ctx context.Context, memorialID uuid.UUID, page, limit int) ([]model.Comment, int, error)
	Create(ctx context.Context, comment *model.Comment) error
}

// UserRepository defines persistence operations for admin users.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}
