// Package job implements the job posting repository using PostgreSQL.
package job

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// Repo provides job persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new job repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"id", "employer_id", "company_id", "title", "slug", "description", "skills_required",
	"experience_required", "education_required", "location", "salary", "job_type",
	"deadline", "openings", "status", "posted_date",
}

func qualified(prefix string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = prefix + "." + c
	}
	return out
}

// viewSelect selects jobs with their company name, employer user and
// applicant count.
func viewSelect() sq.SelectBuilder {
	cols := append(qualified("j", columns),
		"c.name",
		"e.user_id",
		"(SELECT count(*) FROM applications a WHERE a.job_id = j.id)",
	)
	return postgres.Builder.Select(cols...).
		From("jobs j").
		Join("companies c ON c.id = j.company_id").
		Join("employers e ON e.id = j.employer_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a job by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Select(columns...).From("jobs").Where(sq.Eq{"id": id}))

	j, err := scanJob(row)
	if err != nil {
		return nil, postgres.MapError(err, "job", id)
	}
	return j, nil
}

// GetView returns a job with its display fields.
func (r *Repo) GetView(ctx context.Context, id int64) (*domain.JobView, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q, viewSelect().Where(sq.Eq{"j.id": id}))

	v, err := scanView(row)
	if err != nil {
		return nil, postgres.MapError(err, "job", id)
	}
	return v, nil
}

// ListActive returns open jobs, newest first.
func (r *Repo) ListActive(ctx context.Context) ([]domain.JobView, error) {
	return r.listViews(ctx, viewSelect().
		Where(sq.Eq{"j.status": string(domain.JobStatusOpen)}).
		OrderBy("j.posted_date DESC", "j.id DESC"))
}

// ListByEmployer returns every job of an employer regardless of status, newest first.
func (r *Repo) ListByEmployer(ctx context.Context, employerID int64) ([]domain.JobView, error) {
	return r.listViews(ctx, viewSelect().
		Where(sq.Eq{"j.employer_id": employerID}).
		OrderBy("j.posted_date DESC", "j.id DESC"))
}

// Search returns open jobs matching the filter, newest first.
func (r *Repo) Search(ctx context.Context, f domain.JobFilter) ([]domain.JobView, error) {
	return r.listViews(ctx, applyFilter(viewSelect(), f).OrderBy("j.posted_date DESC", "j.id DESC"))
}

// ListOpenWithDeadline returns open jobs whose deadline falls on the given
// calendar day.
func (r *Repo) ListOpenWithDeadline(ctx context.Context, day time.Time) ([]domain.JobView, error) {
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return r.listViews(ctx, viewSelect().
		Where(sq.Eq{"j.status": string(domain.JobStatusOpen)}).
		Where(sq.Expr("j.deadline = ?::date", date.Format(time.DateOnly))).
		OrderBy("j.id"))
}

func (r *Repo) listViews(ctx context.Context, b sq.SelectBuilder) ([]domain.JobView, error) {
	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.JobView, error) {
		v, err := scanView(row)
		if err != nil {
			return domain.JobView{}, err
		}
		return *v, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan jobs: %w", err)
	}
	return views, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a job. Employer and company must exist.
func (r *Repo) Create(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Insert("jobs").
			Columns(columns[1:]...).
			Values(j.EmployerID, j.CompanyID, j.Title, j.Slug, j.Description, j.SkillsRequired,
				j.ExperienceRequired, j.EducationRequired, j.Location, j.Salary, string(j.JobType),
				j.Deadline, j.Openings, string(j.Status), j.PostedDate).
			Suffix("RETURNING "+strings.Join(columns, ", ")))

	created, err := scanJob(row)
	if err != nil {
		return nil, postgres.MapError(err, "job", j.Title)
	}
	return created, nil
}

// Update overwrites the editable fields of a job. Ownership, status and
// posted date are left untouched.
func (r *Repo) Update(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Update("jobs").
			Set("title", j.Title).
			Set("slug", j.Slug).
			Set("description", j.Description).
			Set("skills_required", j.SkillsRequired).
			Set("experience_required", j.ExperienceRequired).
			Set("education_required", j.EducationRequired).
			Set("location", j.Location).
			Set("salary", j.Salary).
			Set("job_type", string(j.JobType)).
			Set("deadline", j.Deadline).
			Set("openings", j.Openings).
			Where(sq.Eq{"id": j.ID}).
			Suffix("RETURNING "+strings.Join(columns, ", ")))

	updated, err := scanJob(row)
	if err != nil {
		return nil, postgres.MapError(err, "job", j.ID)
	}
	return updated, nil
}

// SetStatus moves a job to the given lifecycle status.
func (r *Repo) SetStatus(ctx context.Context, id int64, status domain.JobStatus) (*domain.Job, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Update("jobs").
			Set("status", string(status)).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING "+strings.Join(columns, ", ")))

	updated, err := scanJob(row)
	if err != nil {
		return nil, postgres.MapError(err, "job", id)
	}
	return updated, nil
}

// Delete removes a job together with its applications, notes and bookmarks.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder.Delete("jobs").Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "job", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func jobDest(j *domain.Job, jobType, status *string) []any {
	return []any{
		&j.ID, &j.EmployerID, &j.CompanyID, &j.Title, &j.Slug, &j.Description, &j.SkillsRequired,
		&j.ExperienceRequired, &j.EducationRequired, &j.Location, &j.Salary, jobType,
		&j.Deadline, &j.Openings, status, &j.PostedDate,
	}
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var (
		j               domain.Job
		jobType, status string
	)
	if err := row.Scan(jobDest(&j, &jobType, &status)...); err != nil {
		return nil, err
	}
	j.JobType = domain.JobType(jobType)
	j.Status = domain.JobStatus(status)
	return &j, nil
}

func scanView(row pgx.Row) (*domain.JobView, error) {
	var (
		v               domain.JobView
		jobType, status string
	)
	dest := append(jobDest(&v.Job, &jobType, &status), &v.CompanyName, &v.EmployerUserID, &v.ApplicantCount)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	v.JobType = domain.JobType(jobType)
	v.Status = domain.JobStatus(status)
	return &v, nil
}
