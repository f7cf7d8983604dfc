// Package notification implements the notification repository using PostgreSQL.
package notification

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = "id, user_id, message, is_read, created_at"

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getSQL = `SELECT ` + columns + ` FROM notifications WHERE id = $1`

// GetByID returns a notification by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}
	return n, nil
}

const listByUserSQL = `
SELECT ` + columns + ` FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`

// ListByUser returns a user's notifications, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		n, err := scan(row)
		if err != nil {
			return domain.Notification{}, err
		}
		return *n, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan notifications: %w", err)
	}
	return items, nil
}

const countUnreadSQL = `SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read`

// CountUnread returns the number of unread notifications of a user.
func (r *Repo) CountUnread(ctx context.Context, userID int64) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countUnreadSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO notifications (user_id, message)
VALUES ($1, $2)
RETURNING ` + columns

// Create stores an unread notification. An unknown user yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, userID int64, message string) (*domain.Notification, error) {
	n, err := scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL, userID, message))
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	return n, nil
}

const markReadSQL = `UPDATE notifications SET is_read = true WHERE id = $1 RETURNING ` + columns

// MarkRead flags one notification as read.
func (r *Repo) MarkRead(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, markReadSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}
	return n, nil
}

const markAllReadSQL = `UPDATE notifications SET is_read = true WHERE user_id = $1 AND NOT is_read`

// MarkAllRead flags every unread notification of a user as read and
// returns how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID int64) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, markAllReadSQL, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scan(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	if err := row.Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}
