package postgres

import (
	"context"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, COALESCE(phone, ''), created_at, updated_at`

type usersRepo struct {
	q querier
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	var phone *string
	if u.Phone != "" {
		phone = &u.Phone
	}

	_, err := r.q.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, phone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Name, u.Email, u.PasswordHash, phone, u.CreatedAt, u.UpdatedAt,
	)
	return mapConstraint(err)
}
