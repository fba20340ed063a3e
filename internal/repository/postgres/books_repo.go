package postgres

import (
	"context"

	"github.com/bookshelfapp/bookshelf-server/internal/models"
	"github.com/bookshelfapp/bookshelf-server/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type booksRepo struct{ pool *pgxpool.Pool }

const bookCols = `id, title, author, google_book_id, poster_url, total_pages, current_page, notes, status, user_id, created_at, updated_at`

func scanBook(row pgx.Row) (models.Book, error) {
	var b models.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.GoogleBookID, &b.PosterURL,
		&b.TotalPages, &b.CurrentPage, &b.Notes, &b.Status, &b.UserID,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.Book{}, mapError(err)
	}
	return b, nil
}

func (r *booksRepo) Create(ctx context.Context, b models.Book) (models.Book, error) {
	return scanBook(r.pool.QueryRow(ctx,
		`INSERT INTO books(id, title, author, google_book_id, poster_url, total_pages, current_page, notes, status, user_id)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 RETURNING `+bookCols,
		uuid.NewString(), b.Title, b.Author, b.GoogleBookID, b.PosterURL,
		b.TotalPages, b.CurrentPage, b.Notes, b.Status, b.UserID,
	))
}

func (r *booksRepo) GetByID(ctx context.Context, id string) (models.Book, error) {
	return scanBook(r.pool.QueryRow(ctx,
		`SELECT `+bookCols+` FROM books WHERE id=$1`, id))
}

func (r *booksRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Book, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bookCols+` FROM books WHERE user_id=$1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *booksRepo) Update(ctx context.Context, b models.Book) (models.Book, error) {
	return scanBook(r.pool.QueryRow(ctx,
		`UPDATE books
		    SET title=$2, author=$3, poster_url=$4, total_pages=$5,
		        current_page=$6, notes=$7, status=$8, updated_at=now()
		  WHERE id=$1
		  RETURNING `+bookCols,
		b.ID, b.Title, b.Author, b.PosterURL, b.TotalPages,
		b.CurrentPage, b.Notes, b.Status,
	))
}

func (r *booksRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id=$1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
