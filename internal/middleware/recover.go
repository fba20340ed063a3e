package middleware

import (
	"log/slog"
	"net/http"

	"github.com/bookshelfapp/bookshelf-server/internal/api/httpx"
)

// Recover converts a handler panic into a generic 500 with no internal
// detail in the body.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic", "err", rec)
				httpx.Error(w, http.StatusInternalServerError, "Server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
