// Package application implements persistence for job applications and
// their note trail using PostgreSQL.
package application

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// uniqueSeekerJob is the constraint guarding one application per seeker and job.
const uniqueSeekerJob = "ux_applications_seeker_job"

// Repo provides application and note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new application repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"id", "job_id", "job_seeker_id", "resume_id", "cover_letter", "status", "applied_at", "withdraw_reason",
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// viewSelect joins every table needed to render an application and to
// address both parties.
func viewSelect() sq.SelectBuilder {
	cols := make([]string, 0, len(columns)+5)
	for _, c := range columns {
		cols = append(cols, "a."+c)
	}
	cols = append(cols, "j.title", "c.name", "s.name", "s.user_id", "e.user_id")

	return postgres.Builder.Select(cols...).
		From("applications a").
		Join("jobs j ON j.id = a.job_id").
		Join("companies c ON c.id = j.company_id").
		Join("employers e ON e.id = j.employer_id").
		Join("job_seekers s ON s.id = a.job_seeker_id").
		LeftJoin("resumes r ON r.id = a.resume_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const existsSQL = `SELECT EXISTS(SELECT 1 FROM applications WHERE job_seeker_id = $1 AND job_id = $2)`

// Exists reports whether the seeker already applied to the job.
func (r *Repo) Exists(ctx context.Context, seekerID, jobID int64) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, seekerID, jobID).Scan(&exists); err != nil {
		return false, fmt.Errorf("application exists: %w", err)
	}
	return exists, nil
}

// GetByID returns an application by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Select(columns...).From("applications").Where(sq.Eq{"id": id}))

	a, err := scanApplication(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", id)
	}
	return a, nil
}

// GetView returns an application with its display fields. Notes are not loaded.
func (r *Repo) GetView(ctx context.Context, id int64) (*domain.ApplicationView, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q, viewSelect().Where(sq.Eq{"a.id": id}))

	v, err := scanView(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", id)
	}
	return v, nil
}

// ListBySeeker returns a seeker's applications, newest first.
func (r *Repo) ListBySeeker(ctx context.Context, seekerID int64) ([]domain.ApplicationView, error) {
	return r.listViews(ctx, viewSelect().
		Where(sq.Eq{"a.job_seeker_id": seekerID}).
		OrderBy("a.applied_at DESC", "a.id DESC"))
}

// ListByJob returns a job's applications in submission order.
func (r *Repo) ListByJob(ctx context.Context, jobID int64) ([]domain.ApplicationView, error) {
	return r.listViews(ctx, viewSelect().
		Where(sq.Eq{"a.job_id": jobID}).
		OrderBy("a.id"))
}

// Search returns the applications of a job that match the filter.
func (r *Repo) Search(ctx context.Context, jobID int64, f domain.ApplicationFilter) ([]domain.ApplicationView, error) {
	return r.listViews(ctx, applyFilter(viewSelect().Where(sq.Eq{"a.job_id": jobID}), f).OrderBy("a.id"))
}

const appliedJobIDsSQL = `SELECT job_id FROM applications WHERE job_seeker_id = $1 ORDER BY job_id`

// AppliedJobIDs returns the ids of every job the seeker applied to.
func (r *Repo) AppliedJobIDs(ctx context.Context, seekerID int64) ([]int64, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, appliedJobIDsSQL, seekerID)
	if err != nil {
		return nil, fmt.Errorf("applied job ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan applied job ids: %w", err)
	}
	return ids, nil
}

func (r *Repo) listViews(ctx context.Context, b sq.SelectBuilder) ([]domain.ApplicationView, error) {
	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ApplicationView, error) {
		v, err := scanView(row)
		if err != nil {
			return domain.ApplicationView{}, err
		}
		return *v, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan applications: %w", err)
	}
	return views, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an application. A second application for the same seeker
// and job yields domain.ErrDuplicateSubmission, including when two inserts
// race past the service-level existence check.
func (r *Repo) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Insert("applications").
			Columns("job_id", "job_seeker_id", "resume_id", "cover_letter", "status").
			Values(a.JobID, a.JobSeekerID, a.ResumeID, a.CoverLetter, string(a.Status)).
			Suffix(returning()))

	created, err := scanApplication(row)
	if err != nil {
		if postgres.IsUniqueViolation(err, uniqueSeekerJob) {
			return nil, fmt.Errorf("application seeker %d job %d: %w", a.JobSeekerID, a.JobID, domain.ErrDuplicateSubmission)
		}
		return nil, postgres.MapError(err, "application", fmt.Sprintf("seeker %d job %d", a.JobSeekerID, a.JobID))
	}
	return created, nil
}

// UpdateStatus sets the status of an application.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	return r.update(ctx, id, postgres.Builder.Update("applications").Set("status", string(status)))
}

// Withdraw sets the status to WITHDRAWN and stores the reason, which may be nil.
func (r *Repo) Withdraw(ctx context.Context, id int64, reason *string) (*domain.Application, error) {
	return r.update(ctx, id, postgres.Builder.Update("applications").
		Set("status", string(domain.ApplicationStatusWithdrawn)).
		Set("withdraw_reason", reason))
}

func (r *Repo) update(ctx context.Context, id int64, b sq.UpdateBuilder) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q, b.Where(sq.Eq{"id": id}).Suffix(returning()))

	a, err := scanApplication(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", id)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func applicationDest(a *domain.Application, status *string) []any {
	return []any{&a.ID, &a.JobID, &a.JobSeekerID, &a.ResumeID, &a.CoverLetter, status, &a.AppliedAt, &a.WithdrawReason}
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var (
		a      domain.Application
		status string
	)
	if err := row.Scan(applicationDest(&a, &status)...); err != nil {
		return nil, err
	}
	a.Status = domain.ApplicationStatus(status)
	return &a, nil
}

func scanView(row pgx.Row) (*domain.ApplicationView, error) {
	var (
		v      domain.ApplicationView
		status string
	)
	dest := append(applicationDest(&v.Application, &status),
		&v.JobTitle, &v.CompanyName, &v.SeekerName, &v.SeekerUserID, &v.EmployerUserID)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	v.Status = domain.ApplicationStatus(status)
	return &v, nil
}
