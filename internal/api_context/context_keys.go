package api_context

import (
	"context"
)

type ctxKey string

const (
	SlugKey      ctxKey = "slug"
	AuthEmailKey ctxKey = "authEmail"
)

func SlugFromContext(ctx context.Context) (string, bool) {
	slug, ok := ctx.Value(SlugKey).(string)
	return slug, ok
}

func AuthEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AuthEmailKey).(string)
	return email, ok
}

func WithSlug(ctx context.Context, slug string) context.Context {
	return context.WithValue(ctx, SlugKey, slug)
}

func WithAuthEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, AuthEmailKey, email)
}
