package repository

import (
	"context"
	"errors"

	"github.com/bookshelfapp/bookshelf-server/internal/models"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	// Uniqueness is enforced by the database index, never by a
	// check-then-insert in application code.
	ErrDuplicate = errors.New("duplicate")
)

type Users interface {
	Create(ctx context.Context, name, email, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type Books interface {
	Create(ctx context.Context, b models.Book) (models.Book, error)
	GetByID(ctx context.Context, id string) (models.Book, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Book, error)
	Update(ctx context.Context, b models.Book) (models.Book, error)
	Delete(ctx context.Context, id string) error
}
