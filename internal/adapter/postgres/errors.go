package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity name and id. context.DeadlineExceeded and context.Canceled are not
// mapped.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
		case codeCheckViolation:
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}

// IsUniqueViolation reports whether err is a unique_violation on the named
// constraint. An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
