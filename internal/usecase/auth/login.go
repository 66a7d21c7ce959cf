package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an issued admin token stays valid.
const TokenTTL = 12 * time.Hour

type authenticatorSrv struct {
	users  port.UserRepository
	secret []byte
	now    func() time.Time
}

// compile-time check: *authenticatorSrv must satisfy port.Authenticator
var _ port.Authenticator = (*authenticatorSrv)(nil)

// NewAuthenticator constructs an Authenticator implementation signing
// HS256 tokens with the given secret.
func NewAuthenticator(users port.UserRepository, secret string) port.Authenticator {
	return &authenticatorSrv{users: users, secret: []byte(secret), now: time.Now}
}

// Login verifies the credentials against the stored bcrypt hash and issues
// a signed token. Unknown emails and wrong passwords are indistinguishable
// to the caller.
func (s *authenticatorSrv) Login(ctx context.Context, in port.LoginInput) (port.LoginOutput, error) {
	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return port.LoginOutput{}, ErrInvalidCredentials
		}
		return port.LoginOutput{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return port.LoginOutput{}, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"email": user.Email,
		"name":  user.Name,
		"exp":   s.now().Add(TokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return port.LoginOutput{}, fmt.Errorf("signing token: %w", err)
	}

	return port.LoginOutput{Token: token, Email: user.Email, Name: user.Name}, nil
}
