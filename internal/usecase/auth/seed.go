package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fhuszti/memorials-ms-go/internal/model"
	"github.com/fhuszti/memorials-ms-go/internal/port"
	"golang.org/x/crypto/bcrypt"
)

type adminSeederSrv struct {
	users    port.UserRepository
	uuidGen  port.UUIDGen
	email    string
	password string
}

// compile-time check: *adminSeederSrv must satisfy port.AdminSeeder
var _ port.AdminSeeder = (*adminSeederSrv)(nil)

// NewAdminSeeder constructs an AdminSeeder implementation.
func NewAdminSeeder(users port.UserRepository, uuidGen port.UUIDGen, email, password string) port.AdminSeeder {
	return &adminSeederSrv{users: users, uuidGen: uuidGen, email: email, password: password}
}

// EnsureAdmin creates the bootstrap admin user on first start. Missing seed
// credentials only log a warning, the service can run without an admin.
func (s *adminSeederSrv) EnsureAdmin(ctx context.Context) error {
	if s.email == "" || s.password == "" {
		log.Println("admin seed credentials not configured; skipping admin creation")
		return nil
	}

	_, err := s.users.GetByEmail(ctx, s.email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}
	user := &model.User{
		ID:           s.uuidGen(),
		Email:        s.email,
		Name:         "Administrator",
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	log.Printf("created admin user %q", s.email)
	return nil
}
