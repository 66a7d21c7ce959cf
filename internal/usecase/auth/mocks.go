package auth

import (
	"context"

	"github.com/fhuszti/memorials-ms-go/internal/model"
)

type mockUserRepo struct {
	user      *model.User
	getErr    error
	createErr error

	created *model.User
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}
func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	m.created = user
	return m.createErr
}
