package middleware

import (
	"context"

	"github.com/bookshelfapp/bookshelf-server/internal/models"
)

type userKey struct{}

// WithUser stores the resolved identity; only the auth middleware calls it.
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFrom returns the authenticated identity, if the auth middleware ran.
func UserFrom(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey{}).(models.User)
	return u, ok
}
