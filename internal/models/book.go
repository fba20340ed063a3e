package models

import (
	"time"

	"github.com/bookshelfapp/bookshelf-server/internal/validate"
)

type BookStatus string

const (
	StatusReading    BookStatus = "reading"
	StatusCompleted  BookStatus = "completed"
	StatusWantToRead BookStatus = "want-to-read"
)

// PlaceholderCoverURL is stored when a book arrives without a cover image.
const PlaceholderCoverURL = "https://via.placeholder.com/150x200?text=No+Cover"

type Book struct {
	ID           string
	Title        string
	Author       string
	GoogleBookID string
	PosterURL    string
	TotalPages   int
	CurrentPage  int
	Notes        string
	Status       BookStatus
	UserID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BookPayload is the client-facing write shape. The frontend has sent both
// camelCase and snake_case spellings over time, so both are decoded and the
// camelCase one wins when present. Unrecognized keys are dropped by the
// JSON decoder.
type BookPayload struct {
	Title             *string `json:"title"`
	Author            *string `json:"author"`
	GoogleBookID      *string `json:"googleBookId"`
	GoogleBookIDSnake *string `json:"google_book_id"`
	PosterURL         *string `json:"posterUrl"`
	PosterURLSnake    *string `json:"poster_url"`
	TotalPages        *int    `json:"totalPages"`
	TotalPagesSnake   *int    `json:"total_pages"`
	CurrentPage       *int    `json:"currentPage"`
	CurrentPageSnake  *int    `json:"current_page"`
	Notes             *string `json:"notes"`
	Status            *string `json:"status"`
}

func pick[T any](a, b *T) *T {
	if a != nil {
		return a
	}
	return b
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// NormalizeForCreate validates the required fields and fills the documented
// defaults, producing a record owned by ownerID. The owner always comes from
// the authenticated request, never from the payload.
func (p BookPayload) NormalizeForCreate(ownerID string) (Book, error) {
	googleID := pick(p.GoogleBookID, p.GoogleBookIDSnake)
	if strVal(p.Title) == "" || strVal(p.Author) == "" || strVal(googleID) == "" {
		return Book{}, &validate.Error{Message: "Please include all required fields: title, author, and googleBookId"}
	}
	b := Book{
		Title:        *p.Title,
		Author:       *p.Author,
		GoogleBookID: *googleID,
		PosterURL:    PlaceholderCoverURL,
		Status:       StatusWantToRead,
		UserID:       ownerID,
	}
	// a blank poster URL is not a valid override; keep the placeholder
	if u := pick(p.PosterURL, p.PosterURLSnake); strVal(u) != "" {
		b.PosterURL = *u
	}
	if n := pick(p.TotalPages, p.TotalPagesSnake); n != nil {
		b.TotalPages = *n
	}
	if n := pick(p.CurrentPage, p.CurrentPageSnake); n != nil {
		b.CurrentPage = *n
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	if s := strVal(p.Status); s != "" {
		b.Status = BookStatus(s)
	}
	return b, nil
}

// BookPatch holds only the fields present in an update payload.
type BookPatch struct {
	Title       *string
	Author      *string
	PosterURL   *string
	TotalPages  *int
	CurrentPage *int
	Notes       *string
	Status      *string
}

// Patch extracts the fields present in the payload. The external id is not
// mutable after creation, and the status is taken as the client sent it.
func (p BookPayload) Patch() BookPatch {
	return BookPatch{
		Title:       p.Title,
		Author:      p.Author,
		PosterURL:   pick(p.PosterURL, p.PosterURLSnake),
		TotalPages:  pick(p.TotalPages, p.TotalPagesSnake),
		CurrentPage: pick(p.CurrentPage, p.CurrentPageSnake),
		Notes:       p.Notes,
		Status:      p.Status,
	}
}

// Apply overwrites only the fields the patch carries.
func (p BookPatch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.PosterURL != nil {
		b.PosterURL = *p.PosterURL
	}
	if p.TotalPages != nil {
		b.TotalPages = *p.TotalPages
	}
	if p.CurrentPage != nil {
		b.CurrentPage = *p.CurrentPage
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	if p.Status != nil {
		b.Status = BookStatus(*p.Status)
	}
}
