package services

import (
	"context"
	"errors"

	"github.com/bookshelfapp/bookshelf-server/internal/models"
	repo "github.com/bookshelfapp/bookshelf-server/internal/repository"
)

type BookService struct {
	books repo.Books
}

func NewBookService(books repo.Books) *BookService { return &BookService{books: books} }

func (s *BookService) List(ctx context.Context, ownerID string) ([]models.Book, error) {
	return s.books.ListByOwner(ctx, ownerID)
}

// Create inserts a normalized record. A second copy of the same external
// book for the same owner trips the unique constraint and comes back as
// ErrDuplicateBook.
func (s *BookService) Create(ctx context.Context, b models.Book) (models.Book, error) {
	created, err := s.books.Create(ctx, b)
	if errors.Is(err, repo.ErrDuplicate) {
		return models.Book{}, ErrDuplicateBook
	}
	if err != nil {
		return models.Book{}, err
	}
	return created, nil
}

// getOwned loads a book and enforces ownership. A missing row and a row
// owned by someone else are distinct failures so the caller can answer 404
// versus the not-owner policy.
func (s *BookService) getOwned(ctx context.Context, id, ownerID string) (models.Book, error) {
	b, err := s.books.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Book{}, ErrBookNotFound
	}
	if err != nil {
		return models.Book{}, err
	}
	if b.UserID != ownerID {
		return models.Book{}, ErrNotOwner
	}
	return b, nil
}

func (s *BookService) Get(ctx context.Context, id, ownerID string) (models.Book, error) {
	return s.getOwned(ctx, id, ownerID)
}

// Update applies only the fields present in the patch and refreshes
// updated_at. An empty patch still touches the record.
func (s *BookService) Update(ctx context.Context, id, ownerID string, patch models.BookPatch) (models.Book, error) {
	b, err := s.getOwned(ctx, id, ownerID)
	if err != nil {
		return models.Book{}, err
	}
	patch.Apply(&b)
	updated, err := s.books.Update(ctx, b)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Book{}, ErrBookNotFound
	}
	if err != nil {
		return models.Book{}, err
	}
	return updated, nil
}

func (s *BookService) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := s.getOwned(ctx, id, ownerID); err != nil {
		return err
	}
	err := s.books.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrBookNotFound
	}
	return err
}
