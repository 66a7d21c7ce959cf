package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/fhuszti/memorials-ms-go/internal/api_context"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
)

// WithSlug extracts the {slug} route parameter and stashes it in context.
func WithSlug() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := chi.URLParam(r, "slug")
			if slug == "" {
				WriteError(w, http.StatusBadRequest, "slug is required", nil)
				return
			}

			ctx := api_context.WithSlug(r.Context(), slug)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithJWTAuth validates a Bearer HS256 token and stashes the admin's email
// in context.
func WithJWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}
			tokenStr := strings.TrimPrefix(auth, "Bearer ")
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			email, _ := claims["email"].(string)
			if email == "" {
				WriteError(w, http.StatusUnauthorized, "missing email claim", nil)
				return
			}

			ctx := api_context.WithAuthEmail(r.Context(), email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
