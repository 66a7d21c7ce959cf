package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/uuid"
)

var memorialCols = []string{"id", "name", "biography", "slug", "main_photo_url", "theme_colour", "gallery_photos", "gallery_videos", "birth_year", "death_year", "death_cause", "created_at", "updated_at"}

func mockID(t *testing.T) (uuid.UUID, []byte) {
	t.Helper()
	id := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	bin, err := id.Bytes()
	if err != nil {
		t.Fatalf("marshal uuid: %v", err)
	}
	return id, bin
}

func TestMemorialRepository_GetBySlug_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewMemorialRepository(sqlDB)
	id, bin := mockID(t)
	now := time.Now()

	rows := sqlmock.NewRows(memorialCols).
		AddRow(bin, "Jane Doe", "A life well lived.", "jane_doe",
			"https://cdn.example.com/memorials/memorial/jane_doe/main_x.webp", "#336699",
			[]byte(`["https://cdn.example.com/a.webp"]`), []byte(`[]`),
			1950, 2024, nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM memorials`)).
		WithArgs("jane_doe").
		WillReturnRows(rows)

	m, err := repo.GetBySlug(context.Background(), "jane_doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != id || m.Slug != "jane_doe" || m.Name != "Jane Doe" {
		t.Errorf("unexpected memorial: %+v", m)
	}
	if len(m.GalleryPhotos) != 1 || len(m.GalleryVideos) != 0 {
		t.Errorf("unexpected galleries: %v %v", m.GalleryPhotos, m.GalleryVideos)
	}
	if m.BirthYear == nil || *m.BirthYear != 1950 || m.DeathCause != nil {
		t.Error("unexpected optional fields")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMemorialRepository_GetBySlug_NotFound(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewMemorialRepository(sqlDB)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM memorials`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetBySlug(context.Background(), "ghost"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestMemorialRepository_ExistsSlug(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewMemorialRepository(sqlDB)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM memorials WHERE slug = ?)`)).
		WithArgs("jane_doe").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsSlug(context.Background(), "jane_doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected slug to exist")
	}
}

func TestMemorialRepository_Insert_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewMemorialRepository(sqlDB)
	id, _ := mockID(t)
	now := time.Now().UTC()
	m := &model.Memorial{
		ID:            id,
		Name:          "Jane Doe",
		Slug:          "jane_doe",
		MainPhotoURL:  "https://cdn.example.com/memorials/memorial/jane_doe/main_x.webp",
		GalleryPhotos: model.StringList{},
		GalleryVideos: model.StringList{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO memorials`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Insert(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMemorialRepository_DeleteBySlug_NoRows(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewMemorialRepository(sqlDB)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM memorials WHERE slug = ?`)).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteBySlug(context.Background(), "ghost"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}
