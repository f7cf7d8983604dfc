// Package user implements persistence for accounts and their role profiles
// (job seekers, employers and companies) using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// Repo provides user, seeker, employer and company persistence.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var userColumns = []string{"id", "email", "password_hash", "role", "created_at"}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Select(userColumns...).From("users").Where(sq.Eq{"id": id}))

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by normalized email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Select(userColumns...).From("users").Where(sq.Eq{"email": email}))

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

const existsByEmailSQL = `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

// ExistsByEmail reports whether an account with the email exists.
func (r *Repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsByEmailSQL, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("user exists by email: %w", err)
	}
	return exists, nil
}

// Create inserts a user. A taken email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Insert("users").
			Columns("email", "password_hash", "role").
			Values(u.Email, u.PasswordHash, string(u.Role)).
			Suffix("RETURNING id, email, password_hash, role, created_at"))

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}
