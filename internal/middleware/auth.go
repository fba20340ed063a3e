package middleware

import (
	"net/http"
	"strings"

	"github.com/bookshelfapp/bookshelf-server/internal/api/httpx"
	"github.com/bookshelfapp/bookshelf-server/internal/auth"
	"github.com/bookshelfapp/bookshelf-server/internal/repository"
)

// notAuthorizedMsg is the same for every failure mode so the response never
// reveals whether the token was missing, invalid, expired, or pointed at a
// deleted account.
const notAuthorizedMsg = "Not authorized, no token"

type AuthMiddleware struct {
	tokens *auth.TokenManager
	users  repository.Users
}

func NewAuthMiddleware(tm *auth.TokenManager, users repository.Users) *AuthMiddleware {
	return &AuthMiddleware{tokens: tm, users: users}
}

// Auth resolves the bearer token to a stored identity before the handler
// runs; on any failure the request short-circuits with 401.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the scheme prefix must be exactly "Bearer "
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			httpx.Error(w, http.StatusUnauthorized, notAuthorizedMsg)
			return
		}
		userID, err := m.tokens.Verify(token)
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, notAuthorizedMsg)
			return
		}
		u, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, notAuthorizedMsg)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}
