package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
)

type MemorialRepository struct {
	db *sql.DB
}

// compile-time check: *MemorialRepository must satisfy port.MemorialRepository
var _ port.MemorialRepository = (*MemorialRepository)(nil)

func NewMemorialRepository(db *sql.DB) *MemorialRepository {
	return &MemorialRepository{db: db}
}

const memorialColumns = `id, name, biography, slug, main_photo_url, theme_colour, gallery_photos, gallery_videos, birth_year, death_year, death_cause, created_at, updated_at`

func (r *MemorialRepository) List(ctx context.Context) ([]model.Memorial, error) {
	log.Printf("fetching all memorials from the database...")

	const query = `
      SELECT ` + memorialColumns + `
      FROM memorials
      ORDER BY created_at DESC
    `
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var memorials []model.Memorial
	for rows.Next() {
		var m model.Memorial
		if err := scanMemorial(rows, &m); err != nil {
			return nil, err
		}
		memorials = append(memorials, m)
	}
	return memorials, rows.Err()
}

func (r *MemorialRepository) GetBySlug(ctx context.Context, slug string) (*model.Memorial, error) {
	log.Printf("fetching memorial %q from the database...", slug)

	const query = `
      SELECT ` + memorialColumns + `
      FROM memorials
      WHERE slug = ?
    `
	row := r.db.QueryRowContext(ctx, query, slug)
	var m model.Memorial
	if err := scanMemorial(row, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemorialRepository) ExistsSlug(ctx context.Context, slug string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM memorials WHERE slug = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *MemorialRepository) Insert(ctx context.Context, memorial *model.Memorial) error {
	log.Printf("creating database record for memorial %q...", memorial.Slug)

	const query = `
      INSERT INTO memorials
        (id, name, biography, slug, main_photo_url, theme_colour, gallery_photos, gallery_videos, birth_year, death_year, death_cause, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		memorial.ID, memorial.Name, memorial.Biography,
		memorial.Slug, memorial.MainPhotoURL, memorial.ThemeColour,
		memorial.GalleryPhotos, memorial.GalleryVideos,
		memorial.BirthYear, memorial.DeathYear, memorial.DeathCause,
		memorial.CreatedAt, memorial.UpdatedAt,
	)
	return err
}

func (r *MemorialRepository) UpdateBySlug(ctx context.Context, slug string, memorial *model.Memorial) error {
	log.Printf("updating database record for memorial %q...", slug)

	const query = `
      UPDATE memorials
      SET
        name           = ?,
        biography      = ?,
        slug           = ?,
        main_photo_url = ?,
        theme_colour   = ?,
        gallery_photos = ?,
        gallery_videos = ?,
        birth_year     = ?,
        death_year     = ?,
        death_cause    = ?,
        updated_at     = ?
      WHERE slug = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		memorial.Name,
		memorial.Biography,
		memorial.Slug,
		memorial.MainPhotoURL,
		memorial.ThemeColour,
		memorial.GalleryPhotos,
		memorial.GalleryVideos,
		memorial.BirthYear,
		memorial.DeathYear,
		memorial.DeathCause,
		memorial.UpdatedAt,
		slug, // WHERE clause
	)
	return err
}

func (r *MemorialRepository) DeleteBySlug(ctx context.Context, slug string) error {
	log.Printf("deleting database record for memorial %q...", slug)

	const query = `DELETE FROM memorials WHERE slug = ?`
	res, err := r.db.ExecContext(ctx, query, slug)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMemorial(row rowScanner, m *model.Memorial) error {
	return row.Scan(
		&m.ID, &m.Name, &m.Biography,
		&m.Slug, &m.MainPhotoURL, &m.ThemeColour,
		&m.GalleryPhotos, &m.GalleryVideos,
		&m.BirthYear, &m.DeathYear, &m.DeathCause,
		&m.CreatedAt, &m.UpdatedAt,
	)
}
