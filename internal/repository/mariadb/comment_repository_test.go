package mariadb

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fhuszti/memorials-ms-go/internal/model"
)

func TestCommentRepository_ListByMemorialID(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewCommentRepository(sqlDB)
	id, bin := mockID(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM comments WHERE memorial_id = ?`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	rows := sqlmock.NewRows([]string{"id", "memorial_id", "name", "text", "created_at"}).
		AddRow(bin, bin, "A friend", "She will be missed.", now).
		AddRow(bin, bin, nil, "Rest in peace.", now)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM comments`)).
		WithArgs(id, 20, 40). // page 3, limit 20
		WillReturnRows(rows)

	comments, total, err := repo.ListByMemorialID(context.Background(), id, 3, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 42 {
		t.Errorf("total = %d; want 42", total)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Name == nil || *comments[0].Name != "A friend" {
		t.Error("expected first comment to carry its author name")
	}
	if comments[1].Name != nil {
		t.Error("expected second comment to be anonymous")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCommentRepository_Create(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewCommentRepository(sqlDB)
	id, _ := mockID(t)
	c := &model.Comment{ID: id, MemorialID: id, Text: "hello", CreatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO comments`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCommentRepository_ListByMemorialID_CountError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewCommentRepository(sqlDB)
	id, _ := mockID(t)
	wantErr := errors.New("db down")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM comments`)).
		WillReturnError(wantErr)

	if _, _, err := repo.ListByMemorialID(context.Background(), id, 1, 20); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
