package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
)

type UserRepository struct {
	db *sql.DB
}

// compile-time check: *UserRepository must satisfy port.UserRepository
var _ port.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `
      SELECT id, email, name, password_hash, created_at
      FROM users
      WHERE email = ?
    `
	row := r.db.QueryRowContext(ctx, query, email)
	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	log.Printf("creating database record for user %q...", user.Email)

	const query = `
      INSERT INTO users
        (id, email, name, password_hash, created_at)
      VALUES (?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Name,
		user.PasswordHash, user.CreatedAt,
	)
	return err
}
