package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bookshelfapp/bookshelf-server/internal/models"
	repo "github.com/bookshelfapp/bookshelf-server/internal/repository"
)

// memUsers is an in-memory stand-in for the postgres users repo. It mirrors
// the contract exactly, including the duplicate sentinel for unique fields.
type memUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]models.User{}} }

func (m *memUsers) Create(_ context.Context, name, email, hash string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email || u.Name == name {
			return models.User{}, repo.ErrDuplicate
		}
	}
	now := time.Now()
	u := models.User{
		ID: uuid.NewString(), Name: name, Email: email, PasswordHash: hash,
		CreatedAt: now, UpdatedAt: now,
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (m *memUsers) delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

type memBooks struct {
	mu    sync.Mutex
	books map[string]models.Book
}

func newMemBooks() *memBooks { return &memBooks{books: map[string]models.Book{}} }

func (m *memBooks) Create(_ context.Context, b models.Book) (models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.books {
		if existing.GoogleBookID == b.GoogleBookID && existing.UserID == b.UserID {
			return models.Book{}, repo.ErrDuplicate
		}
	}
	now := time.Now()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
	m.books[b.ID] = b
	return b, nil
}

func (m *memBooks) GetByID(_ context.Context, id string) (models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[id]
	if !ok {
		return models.Book{}, repo.ErrNotFound
	}
	return b, nil
}

func (m *memBooks) ListByOwner(_ context.Context, ownerID string) ([]models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Book
	for _, b := range m.books {
		if b.UserID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBooks) Update(_ context.Context, b models.Book) (models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.books[b.ID]
	if !ok {
		return models.Book{}, repo.ErrNotFound
	}
	b.GoogleBookID = stored.GoogleBookID
	b.UserID = stored.UserID
	b.CreatedAt = stored.CreatedAt
	b.UpdatedAt = time.Now()
	m.books[b.ID] = b
	return b, nil
}

func (m *memBooks) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.books[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.books, id)
	return nil
}
