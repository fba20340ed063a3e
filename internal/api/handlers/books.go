package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bookshelfapp/bookshelf-server/internal/api/httpx"
	"github.com/bookshelfapp/bookshelf-server/internal/metrics"
	"github.com/bookshelfapp/bookshelf-server/internal/middleware"
	"github.com/bookshelfapp/bookshelf-server/internal/models"
	"github.com/bookshelfapp/bookshelf-server/internal/services"
	"github.com/bookshelfapp/bookshelf-server/internal/validate"
)

type BookHandler struct {
	svc *services.BookService
}

func NewBookHandler(svc *services.BookService) *BookHandler { return &BookHandler{svc: svc} }

// bookResp maps the internal record to the external wire convention
// (camelCase names, "_id", owner as a plain string).
type bookResp struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	GoogleBookID string `json:"googleBookId"`
	PosterURL    string `json:"posterUrl"`
	TotalPages   int    `json:"totalPages"`
	CurrentPage  int    `json:"currentPage"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
	User         string `json:"user"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func newBookResp(b models.Book) bookResp {
	return bookResp{
		ID:           b.ID,
		Title:        b.Title,
		Author:       b.Author,
		GoogleBookID: b.GoogleBookID,
		PosterURL:    b.PosterURL,
		TotalPages:   b.TotalPages,
		CurrentPage:  b.CurrentPage,
		Notes:        b.Notes,
		Status:       string(b.Status),
		User:         b.UserID,
		CreatedAt:    b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// owner rejects requests that reached a protected handler without a
// resolved identity instead of proceeding with a blank one.
func owner(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Not authorized, please log in")
	}
	return u, ok
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	u, ok := owner(w, r)
	if !ok {
		return
	}
	books, err := h.svc.List(r.Context(), u.ID)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Server error")
		return
	}
	out := make([]bookResp, 0, len(books))
	for _, b := range books {
		out = append(out, newBookResp(b))
	}
	metrics.BookOpsTotal.WithLabelValues("list").Inc()
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, ok := owner(w, r)
	if !ok {
		return
	}
	var payload models.BookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Please include all required fields: title, author, and googleBookId")
		return
	}
	fields, err := payload.NormalizeForCreate(u.ID)
	if err != nil {
		var vErr *validate.Error
		if errors.As(err, &vErr) {
			httpx.Error(w, http.StatusBadRequest, vErr.Message)
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Server error")
		return
	}
	created, err := h.svc.Create(r.Context(), fields)
	if errors.Is(err, services.ErrDuplicateBook) {
		httpx.Error(w, http.StatusBadRequest, "Book already in your library")
		return
	}
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Server error")
		return
	}
	metrics.BookOpsTotal.WithLabelValues("create").Inc()
	httpx.WriteJSON(w, http.StatusCreated, newBookResp(created))
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	u, ok := owner(w, r)
	if !ok {
		return
	}
	var payload models.BookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), u.ID, payload.Patch())
	if err != nil {
		writeBookErr(w, err)
		return
	}
	metrics.BookOpsTotal.WithLabelValues("update").Inc()
	httpx.WriteJSON(w, http.StatusOK, newBookResp(updated))
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	u, ok := owner(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"), u.ID); err != nil {
		writeBookErr(w, err)
		return
	}
	metrics.BookOpsTotal.WithLabelValues("delete").Inc()
	httpx.WriteJSON(w, http.StatusOK, httpx.Message{Message: "Book removed"})
}

// writeBookErr maps ownership-check failures. A book owned by someone else
// answers 401, not 403; that mirrors the original API and is deliberate.
func writeBookErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrBookNotFound):
		httpx.Error(w, http.StatusNotFound, "Book not found")
	case errors.Is(err, services.ErrNotOwner):
		httpx.Error(w, http.StatusUnauthorized, "Not authorized")
	default:
		httpx.Error(w, http.StatusInternalServerError, "Server error")
	}
}
