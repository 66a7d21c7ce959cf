package port

import (
	"context"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// MemorialLister returns every published memorial.
type MemorialLister interface {
	ListMemorials(ctx context.Context) ([]model.Memorial, error)
}

// MemorialGetter retrieves one memorial by slug.
type MemorialGetter interface {
	GetMemorial(ctx context.Context, slug string) (*model.Memorial, error)
}

// MemorialCreator runs the media pipeline and inserts a new memorial.
type MemorialCreator interface {
	CreateMemorial(ctx context.Context, in CreateMemorialInput) (*model.Memorial, error)
}
type CreateMemorialInput struct {
	Name          string
	Biography     string
	Slug          string
	MainPhoto     string
	ThemeColour   string
	GalleryPhotos []string
	GalleryVideos []string
	BirthYear     *int
	DeathYear     *int
	DeathCause    *string
}

// MemorialUpdater applies a partial update, re-running the media pipeline
// for any media field present in the input.
type MemorialUpdater interface {
	UpdateMemorial(ctx context.Context, slug string, in UpdateMemorialInput) (*model.Memorial, error)
}
type UpdateMemorialInput struct {
	Name        *string
	Biography   *string
	Slug        *string
	MainPhoto   *string
	ThemeColour *string
	// nil means "leave untouched"; an empty non-nil slice clears the gallery.
	GalleryPhotos []string
	GalleryVideos []string
	BirthYear     *int
	DeathYear     *int
	DeathCause    *string
}

// MemorialDeleter removes a memorial record and purges its storage namespace.
type MemorialDeleter interface {
	DeleteMemorial(ctx context.Context, slug string) error
}

// CommentLister returns a page of comments for a memorial.
type CommentLister interface {
	ListComments(ctx context.Context, in ListCommentsInput) (*ListCommentsOutput, error)
}
type ListCommentsInput struct {
	Slug  string
	Page  int
	Limit int
}
type ListCommentsOutput struct {
	Comments   []model.Comment `json:"comments"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// CommentCreator posts a public comment on a memorial.
type CommentCreator interface {
	CreateComment(ctx context.Context, in CreateCommentInput) (*model.Comment, error)
}
type CreateCommentInput struct {
	Slug string
	Name *string
	Text string
}

// Authenticator verifies admin credentials and issues a signed token.
type Authenticator interface {
	Login(ctx context.Context, in LoginInput) (LoginOutput, error)
}
type LoginInput struct {
	Email    string
	Password string
}
type LoginOutput struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AdminSeeder guarantees the bootstrap admin user exists.
type AdminSeeder interface {
	EnsureAdmin(ctx context.Context) error
}
