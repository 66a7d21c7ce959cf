package comment

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/memorial"
	"github.com/fhuszti/memorials-ms-go/internal/uuid"
)

func testMemorial() *model.Memorial {
	return &model.Memorial{ID: uuid.NewUUID(), Slug: "jane_doe"}
}

func TestListComments_UnknownMemorial(t *testing.T) {
	svc := NewCommentLister(&mockMemorialRepo{getErr: sql.ErrNoRows}, &mockCommentRepo{})

	_, err := svc.ListComments(context.Background(), port.ListCommentsInput{Slug: "ghost"})
	if !errors.Is(err, memorial.ErrMemorialNotFound) {
		t.Fatalf("expected ErrMemorialNotFound, got %v", err)
	}
}

func TestListComments_Pagination(t *testing.T) {
	m := testMemorial()
	tests := []struct {
		name           string
		page, limit    int
		total          int
		wantPage       int
		wantLimit      int
		wantTotalPages int
	}{
		{"defaults", 0, 0, 45, 1, DefaultPageSize, 3},
		{"exact fit", 2, 15, 45, 2, 15, 3},
		{"partial last page", 1, 20, 41, 1, 20, 3},
		{"limit clamped", 1, 500, 45, 1, MaxPageSize, 1},
		{"negative page", -3, 10, 0, 1, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCommentRepo{total: tt.total}
			svc := NewCommentLister(&mockMemorialRepo{memorial: m}, repo)

			out, err := svc.ListComments(context.Background(), port.ListCommentsInput{Slug: "jane_doe", Page: tt.page, Limit: tt.limit})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Page != tt.wantPage || out.Limit != tt.wantLimit {
				t.Errorf("page/limit = %d/%d, want %d/%d", out.Page, out.Limit, tt.wantPage, tt.wantLimit)
			}
			if out.TotalPages != tt.wantTotalPages {
				t.Errorf("total pages = %d, want %d", out.TotalPages, tt.wantTotalPages)
			}
			if repo.listedPage != tt.wantPage || repo.listedLimit != tt.wantLimit {
				t.Errorf("repository queried with page/limit %d/%d", repo.listedPage, repo.listedLimit)
			}
			if repo.listedID != m.ID {
				t.Error("expected the memorial's ID to be passed to the repository")
			}
		})
	}
}

func TestListComments_RepoError(t *testing.T) {
	wantErr := errors.New("db down")
	svc := NewCommentLister(&mockMemorialRepo{memorial: testMemorial()}, &mockCommentRepo{listErr: wantErr})

	if _, err := svc.ListComments(context.Background(), port.ListCommentsInput{Slug: "jane_doe"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
