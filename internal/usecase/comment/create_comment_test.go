package comment

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/memorial"
	"github.com/fhuszti/memorials-ms-go/internal/uuid"
)

func TestCreateComment_UnknownMemorial(t *testing.T) {
	repo := &mockCommentRepo{}
	svc := NewCommentCreator(&mockMemorialRepo{getErr: sql.ErrNoRows}, repo, uuid.NewUUID)

	_, err := svc.CreateComment(context.Background(), port.CreateCommentInput{Slug: "ghost", Text: "hello"})
	if !errors.Is(err, memorial.ErrMemorialNotFound) {
		t.Fatalf("expected ErrMemorialNotFound, got %v", err)
	}
	if repo.created != nil {
		t.Error("expected no comment for an unknown memorial")
	}
}

func TestCreateComment_Success(t *testing.T) {
	m := testMemorial()
	repo := &mockCommentRepo{}
	svc := NewCommentCreator(&mockMemorialRepo{memorial: m}, repo, uuid.NewUUID)

	name := "A friend"
	out, err := svc.CreateComment(context.Background(), port.CreateCommentInput{Slug: "jane_doe", Name: &name, Text: "She will be missed."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.created != out {
		t.Fatal("expected the returned comment to be the created one")
	}
	if out.MemorialID != m.ID {
		t.Error("expected the comment to target the memorial's ID")
	}
	if out.Name == nil || *out.Name != name {
		t.Error("expected the author name to be kept")
	}
	if out.Text != "She will be missed." || out.CreatedAt.IsZero() {
		t.Error("expected text and creation time to be set")
	}
}

func TestCreateComment_Anonymous(t *testing.T) {
	svc := NewCommentCreator(&mockMemorialRepo{memorial: testMemorial()}, &mockCommentRepo{}, uuid.NewUUID)

	out, err := svc.CreateComment(context.Background(), port.CreateCommentInput{Slug: "jane_doe", Text: "Rest in peace."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != nil {
		t.Error("expected an anonymous comment to carry no name")
	}
}

func TestCreateComment_RepoError(t *testing.T) {
	wantErr := errors.New("db down")
	svc := NewCommentCreator(&mockMemorialRepo{memorial: testMemorial()}, &mockCommentRepo{createErr: wantErr}, uuid.NewUUID)

	if _, err := svc.CreateComment(context.Background(), port.CreateCommentInput{Slug: "jane_doe", Text: "hi"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
