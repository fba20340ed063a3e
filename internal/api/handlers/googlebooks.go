package handlers

import (
	"net/http"

	"github.com/bookshelfapp/bookshelf-server/internal/api/httpx"
	"github.com/bookshelfapp/bookshelf-server/internal/metrics"
	"github.com/bookshelfapp/bookshelf-server/internal/services"
)

type GoogleBooksHandler struct {
	svc *services.GoogleBooksService
}

func NewGoogleBooksHandler(svc *services.GoogleBooksService) *GoogleBooksHandler {
	return &GoogleBooksHandler{svc: svc}
}

// Search proxies the provider search and passes its JSON through untouched.
func (h *GoogleBooksHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		httpx.Error(w, http.StatusBadRequest, "Search query is required")
		return
	}
	body, err := h.svc.Search(r.Context(), q)
	if err != nil {
		metrics.GoogleBooksRequests.WithLabelValues("error").Inc()
		httpx.Error(w, http.StatusInternalServerError, "Error fetching from external API")
		return
	}
	metrics.GoogleBooksRequests.WithLabelValues("ok").Inc()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
