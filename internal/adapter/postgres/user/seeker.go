package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

var seekerColumns = []string{
	"id", "user_id", "name", "phone", "location", "employment_status",
	"experience_years", "profile_completion",
}

// CreateSeeker inserts a job seeker profile.
func (r *Repo) CreateSeeker(ctx context.Context, s *domain.JobSeeker) (*domain.JobSeeker, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Insert("job_seekers").
			Columns("user_id", "name", "phone", "location", "employment_status",
				"experience_years", "profile_completion").
			Values(s.UserID, s.Name, s.Phone, s.Location, s.EmploymentStatus,
				s.ExperienceYears, s.ProfileCompletion).
			Suffix("RETURNING "+joinColumns(seekerColumns)))

	created, err := scanSeeker(row)
	if err != nil {
		return nil, postgres.MapError(err, "job_seeker", fmt.Sprintf("user %d", s.UserID))
	}
	return created, nil
}

// GetSeeker returns a job seeker by id.
func (r *Repo) GetSeeker(ctx context.Context, id int64) (*domain.JobSeeker, error) {
	return r.getSeeker(ctx, sq.Eq{"id": id}, id)
}

// GetSeekerByUserID returns the job seeker profile of a user.
func (r *Repo) GetSeekerByUserID(ctx context.Context, userID int64) (*domain.JobSeeker, error) {
	return r.getSeeker(ctx, sq.Eq{"user_id": userID}, fmt.Sprintf("user %d", userID))
}

func (r *Repo) getSeeker(ctx context.Context, where sq.Eq, id any) (*domain.JobSeeker, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Select(seekerColumns...).From("job_seekers").Where(where))

	s, err := scanSeeker(row)
	if err != nil {
		return nil, postgres.MapError(err, "job_seeker", id)
	}
	return s, nil
}

// UpdateSeeker overwrites the editable profile fields.
func (r *Repo) UpdateSeeker(ctx context.Context, s *domain.JobSeeker) (*domain.JobSeeker, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Update("job_seekers").
			Set("name", s.Name).
			Set("phone", s.Phone).
			Set("location", s.Location).
			Set("employment_status", s.EmploymentStatus).
			Set("experience_years", s.ExperienceYears).
			Set("profile_completion", s.ProfileCompletion).
			Where(sq.Eq{"id": s.ID}).
			Suffix("RETURNING "+joinColumns(seekerColumns)))

	updated, err := scanSeeker(row)
	if err != nil {
		return nil, postgres.MapError(err, "job_seeker", s.ID)
	}
	return updated, nil
}

func scanSeeker(row pgx.Row) (*domain.JobSeeker, error) {
	var s domain.JobSeeker
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Phone, &s.Location, &s.EmploymentStatus,
		&s.ExperienceYears, &s.ProfileCompletion)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
