package application

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

const noteColumns = "id, application_id, text, created_at, updated_at"

const createNoteSQL = `
INSERT INTO application_notes (application_id, text)
VALUES ($1, $2)
RETURNING ` + noteColumns

// CreateNote appends a note to an application. An unknown application
// yields domain.ErrNotFound.
func (r *Repo) CreateNote(ctx context.Context, applicationID int64, text string) (*domain.ApplicationNote, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createNoteSQL, applicationID, text)

	n, err := scanNote(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", applicationID)
	}
	return n, nil
}

const updateNoteSQL = `
UPDATE application_notes SET text = $2, updated_at = now()
WHERE id = $1
RETURNING ` + noteColumns

// UpdateNote replaces the text of a note and bumps its updated_at.
func (r *Repo) UpdateNote(ctx context.Context, id int64, text string) (*domain.ApplicationNote, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateNoteSQL, id, text)

	n, err := scanNote(row)
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	return n, nil
}

// DeleteNote removes a note.
func (r *Repo) DeleteNote(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM application_notes WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "note", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListNotes returns the notes of an application, oldest first.
func (r *Repo) ListNotes(ctx context.Context, applicationID int64) ([]domain.ApplicationNote, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.QueryBuilt(ctx, q,
		postgres.Builder.Select(noteColumns).
			From("application_notes").
			Where(sq.Eq{"application_id": applicationID}).
			OrderBy("created_at", "id"))
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ApplicationNote, error) {
		n, err := scanNote(row)
		if err != nil {
			return domain.ApplicationNote{}, err
		}
		return *n, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan notes: %w", err)
	}
	return notes, nil
}

func scanNote(row pgx.Row) (*domain.ApplicationNote, error) {
	var n domain.ApplicationNote
	if err := row.Scan(&n.ID, &n.ApplicationID, &n.Text, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}
