package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the common interface implemented by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Builder is the squirrel statement builder configured for PostgreSQL
// positional placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type txCtxKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise returns the pool.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// InTx reports whether ctx carries a transaction started by TxManager.
func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	return ok
}

// Sqlizer is satisfied by every squirrel builder.
type Sqlizer interface {
	ToSql() (string, []any, error)
}

// QueryBuilt renders b and runs it as a query on q.
func QueryBuilt(ctx context.Context, q Querier, b Sqlizer) (pgx.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.Query(ctx, query, args...)
}

// QueryRowBuilt renders b and runs it as a single-row query on q.
// Build errors surface from Scan.
func QueryRowBuilt(ctx context.Context, q Querier, b Sqlizer) pgx.Row {
	query, args, err := b.ToSql()
	if err != nil {
		return errRow{err: fmt.Errorf("build query: %w", err)}
	}
	return q.QueryRow(ctx, query, args...)
}

// ExecBuilt renders b and executes it on q.
func ExecBuilt(ctx context.Context, q Querier, b Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return q.Exec(ctx, query, args...)
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }
