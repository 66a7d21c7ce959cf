package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/uuid"
)

type CommentRepository struct {
	db *sql.DB
}

// compile-time check: *CommentRepository must satisfy port.CommentRepository
var _ port.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ListByMemorialID(ctx context.Context, memorialID uuid.UUID, page, limit int) ([]model.Comment, int, error) {
	log.Printf("fetching comments page %d for memorial #%s...", page, memorialID)

	const countQuery = `SELECT COUNT(*) FROM comments WHERE memorial_id = ?`
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, memorialID).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
      SELECT id, memorial_id, name, text, created_at
      FROM comments
      WHERE memorial_id = ?
      ORDER BY created_at DESC
      LIMIT ? OFFSET ?
    `
	offset := (page - 1) * limit
	rows, err := r.db.QueryContext(ctx, query, memorialID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.MemorialID, &c.Name, &c.Text, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		comments = append(comments, c)
	}
	return comments, total, rows.Err()
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	log.Printf("creating database record for comment #%s...", comment.ID)

	const query = `
      INSERT INTO comments
        (id, memorial_id, name, text, created_at)
      VALUES (?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.MemorialID, comment.Name,
		comment.Text, comment.CreatedAt,
	)
	return err
}
