// Package resume implements the seeker resume repository using PostgreSQL.
// Each seeker owns at most one resume.
package resume

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

// Repo provides resume persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new resume repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"id", "job_seeker_id", "objective", "education", "experience", "skills",
	"projects", "certifications", "file_name", "file_path", "updated_at",
}

// GetByID returns a resume by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	return r.get(ctx, sq.Eq{"id": id}, id)
}

// GetBySeeker returns the resume of a seeker.
func (r *Repo) GetBySeeker(ctx context.Context, seekerID int64) (*domain.Resume, error) {
	return r.get(ctx, sq.Eq{"job_seeker_id": seekerID}, fmt.Sprintf("seeker %d", seekerID))
}

func (r *Repo) get(ctx context.Context, where sq.Eq, id any) (*domain.Resume, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Select(columns...).From("resumes").Where(where))

	res, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "resume", id)
	}
	return res, nil
}

// Upsert creates the seeker's resume or overwrites every field of the
// existing one.
func (r *Repo) Upsert(ctx context.Context, res *domain.Resume) (*domain.Resume, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Insert("resumes").
			Columns("job_seeker_id", "objective", "education", "experience", "skills",
				"projects", "certifications", "file_name", "file_path").
			Values(res.JobSeekerID, res.Objective, res.Education, res.Experience, res.Skills,
				res.Projects, res.Certifications, res.FileName, res.FilePath).
			Suffix(`ON CONFLICT (job_seeker_id) DO UPDATE SET
				objective = EXCLUDED.objective,
				education = EXCLUDED.education,
				experience = EXCLUDED.experience,
				skills = EXCLUDED.skills,
				projects = EXCLUDED.projects,
				certifications = EXCLUDED.certifications,
				file_name = EXCLUDED.file_name,
				file_path = EXCLUDED.file_path,
				updated_at = now()
			RETURNING ` + strings.Join(columns, ", ")))

	saved, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "resume", fmt.Sprintf("seeker %d", res.JobSeekerID))
	}
	return saved, nil
}

const listSkillProfilesSQL = `
SELECT s.id, s.user_id, r.skills
FROM resumes r
JOIN job_seekers s ON s.id = r.job_seeker_id
WHERE btrim(r.skills) <> '' AND s.id > $1
ORDER BY s.id
LIMIT $2`

// ListSkillProfiles returns one page of seekers that have a non-blank skill
// list on their resume, ordered by seeker id and starting after
// afterSeekerID. Pass 0 for the first page.
func (r *Repo) ListSkillProfiles(ctx context.Context, afterSeekerID int64, limit int) ([]domain.SeekerSkills, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listSkillProfilesSQL, afterSeekerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list skill profiles: %w", err)
	}

	profiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SeekerSkills, error) {
		var p domain.SeekerSkills
		err := row.Scan(&p.SeekerID, &p.UserID, &p.Skills)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan skill profiles: %w", err)
	}
	return profiles, nil
}

func scan(row pgx.Row) (*domain.Resume, error) {
	var res domain.Resume
	err := row.Scan(&res.ID, &res.JobSeekerID, &res.Objective, &res.Education, &res.Experience,
		&res.Skills, &res.Projects, &res.Certifications, &res.FileName, &res.FilePath, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
