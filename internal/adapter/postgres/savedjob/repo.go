// Package savedjob implements the saved-job repository using PostgreSQL.
package savedjob

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// Repo provides saved-job persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new saved-job repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const saveSQL = `
INSERT INTO saved_jobs (job_seeker_id, job_id)
VALUES ($1, $2)
ON CONFLICT ON CONSTRAINT ux_saved_jobs_seeker_job DO NOTHING`

// Save bookmarks a job for a seeker. Saving twice is not an error.
// Unknown seeker or job yields domain.ErrNotFound.
func (r *Repo) Save(ctx context.Context, seekerID, jobID int64) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, saveSQL, seekerID, jobID); err != nil {
		return postgres.MapError(err, "saved job", fmt.Sprintf("seeker %d job %d", seekerID, jobID))
	}
	return nil
}

const deleteSQL = `DELETE FROM saved_jobs WHERE job_seeker_id = $1 AND job_id = $2`

// Delete removes a bookmark. Removing a missing bookmark is a no-op.
func (r *Repo) Delete(ctx context.Context, seekerID, jobID int64) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, seekerID, jobID); err != nil {
		return fmt.Errorf("delete saved job: %w", err)
	}
	return nil
}

const existsSQL = `SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE job_seeker_id = $1 AND job_id = $2)`

// Exists reports whether the seeker saved the job.
func (r *Repo) Exists(ctx context.Context, seekerID, jobID int64) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, seekerID, jobID).Scan(&ok); err != nil {
		return false, fmt.Errorf("saved job exists: %w", err)
	}
	return ok, nil
}

const listSQL = `
SELECT sj.id, sj.job_seeker_id, sj.job_id, sj.saved_at, j.title, c.name, j.location, j.status
FROM saved_jobs sj
JOIN jobs j ON j.id = sj.job_id
JOIN companies c ON c.id = j.company_id
WHERE sj.job_seeker_id = $1
ORDER BY sj.saved_at DESC, sj.id DESC`

// ListBySeeker returns a seeker's bookmarks with job display fields, newest first.
func (r *Repo) ListBySeeker(ctx context.Context, seekerID int64) ([]domain.SavedJobView, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listSQL, seekerID)
	if err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SavedJobView, error) {
		var (
			v      domain.SavedJobView
			status string
		)
		err := row.Scan(&v.ID, &v.JobSeekerID, &v.JobID, &v.SavedAt, &v.JobTitle, &v.CompanyName, &v.Location, &status)
		v.JobStatus = domain.JobStatus(status)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan saved jobs: %w", err)
	}
	return views, nil
}
