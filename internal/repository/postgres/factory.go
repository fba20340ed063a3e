package postgres

import (
	repo "github.com/bookshelfapp/bookshelf-server/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users repo.Users
	Books repo.Books
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users: &usersRepo{pool},
		Books: &booksRepo{pool},
	}
}
