package postgres

import (
	"context"

	"github.com/bookshelfapp/bookshelf-server/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

const userCols = `id, name, email, password_hash, is_staff, is_superuser, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, mapError(err)
	}
	return u, nil
}

func (r *usersRepo) Create(ctx context.Context, name, email, hash string) (models.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`INSERT INTO users(id, name, email, password_hash)
		 VALUES($1,$2,$3,$4)
		 RETURNING `+userCols,
		uuid.NewString(), name, email, hash,
	))
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id=$1`, id))
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE email=$1`, email))
}
