package auth

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/fhuszti/memorials-ms-go/internal/uuid"
	"golang.org/x/crypto/bcrypt"
)

func TestEnsureAdmin_CreatesUser(t *testing.T) {
	repo := &mockUserRepo{getErr: sql.ErrNoRows}
	svc := NewAdminSeeder(repo, uuid.NewUUID, "admin@example.com", "s3cret")

	if err := svc.EnsureAdmin(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.created == nil {
		t.Fatal("expected an admin user to be created")
	}
	if repo.created.Email != "admin@example.com" || repo.created.Name != "Administrator" {
		t.Errorf("unexpected admin identity: %q %q", repo.created.Email, repo.created.Name)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("s3cret")); err != nil {
		t.Error("stored hash does not match the seed password")
	}
	if repo.created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestEnsureAdmin_NoopWhenUserExists(t *testing.T) {
	repo := &mockUserRepo{user: adminUser(t, "s3cret")}
	svc := NewAdminSeeder(repo, uuid.NewUUID, "admin@example.com", "s3cret")

	if err := svc.EnsureAdmin(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.created != nil {
		t.Error("expected no creation when the admin already exists")
	}
}

func TestEnsureAdmin_SkipsWithoutCredentials(t *testing.T) {
	repo := &mockUserRepo{getErr: sql.ErrNoRows}
	svc := NewAdminSeeder(repo, uuid.NewUUID, "", "")

	if err := svc.EnsureAdmin(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.created != nil {
		t.Error("expected no creation without seed credentials")
	}
}

func TestEnsureAdmin_RepoErrors(t *testing.T) {
	wantErr := errors.New("db down")

	svc := NewAdminSeeder(&mockUserRepo{getErr: wantErr}, uuid.NewUUID, "admin@example.com", "s3cret")
	if err := svc.EnsureAdmin(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v from GetByEmail, got %v", wantErr, err)
	}

	svc = NewAdminSeeder(&mockUserRepo{getErr: sql.ErrNoRows, createErr: wantErr}, uuid.NewUUID, "admin@example.com", "s3cret")
	if err := svc.EnsureAdmin(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v from Create, got %v", wantErr, err)
	}
}
