package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with the given role and a dummy password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	user := domain.User{
		Email:        "user-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$10$not-a-real-hash",
		Role:         role,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		user.Email, user.PasswordHash, string(user.Role),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedSeeker creates a JOB_SEEKER user and its profile.
func SeedSeeker(t *testing.T, pool *pgxpool.Pool, name string, experienceYears int) domain.JobSeeker {
	t.Helper()
	ctx := context.Background()

	user := SeedUser(t, pool, domain.RoleJobSeeker)
	seeker := domain.JobSeeker{
		UserID:          user.ID,
		Name:            name,
		ExperienceYears: experienceYears,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO job_seekers (user_id, name, experience_years) VALUES ($1, $2, $3) RETURNING id`,
		seeker.UserID, seeker.Name, seeker.ExperienceYears,
	).Scan(&seeker.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedSeeker: %v", err)
	}

	return seeker
}

// SeedEmployer creates an EMPLOYER user, a company with the given name, and
// the employer profile linking them.
func SeedEmployer(t *testing.T, pool *pgxpool.Pool, companyName string) (domain.Employer, domain.Company) {
	t.Helper()
	ctx := context.Background()

	user := SeedUser(t, pool, domain.RoleEmployer)

	company := domain.Company{Name: companyName, Industry: "Software"}
	err := pool.QueryRow(ctx,
		`INSERT INTO companies (name, industry) VALUES ($1, $2) RETURNING id`,
		company.Name, company.Industry,
	).Scan(&company.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedEmployer insert company: %v", err)
	}

	employer := domain.Employer{UserID: user.ID, CompanyID: company.ID}
	err = pool.QueryRow(ctx,
		`INSERT INTO employers (user_id, company_id) VALUES ($1, $2) RETURNING id`,
		employer.UserID, employer.CompanyID,
	).Scan(&employer.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedEmployer insert employer: %v", err)
	}

	return employer, company
}

// SeedResume creates the resume of a seeker with the given skills.
func SeedResume(t *testing.T, pool *pgxpool.Pool, seekerID int64, skills string) domain.Resume {
	t.Helper()
	ctx := context.Background()

	education := "BSc Computer Science"
	resume := domain.Resume{
		JobSeekerID: seekerID,
		Skills:      skills,
		Education:   &education,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO resumes (job_seeker_id, skills, education) VALUES ($1, $2, $3)
		 RETURNING id, updated_at`,
		resume.JobSeekerID, resume.Skills, resume.Education,
	).Scan(&resume.ID, &resume.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedResume: %v", err)
	}

	return resume
}

// JobOption customises a seeded job.
type JobOption func(*domain.Job)

// WithDeadline sets the job deadline.
func WithDeadline(d time.Time) JobOption {
	return func(j *domain.Job) { j.Deadline = &d }
}

// WithStatus sets the job status.
func WithStatus(s domain.JobStatus) JobOption {
	return func(j *domain.Job) { j.Status = s }
}

// WithSalary sets the job salary and required experience.
func WithSalary(salary int64, experience int) JobOption {
	return func(j *domain.Job) {
		j.Salary = salary
		j.ExperienceRequired = experience
	}
}

// WithLocation sets the job location and type.
func WithLocation(location string, jobType domain.JobType) JobOption {
	return func(j *domain.Job) {
		j.Location = location
		j.JobType = jobType
	}
}

// SeedJob creates an open full-time job for the employer.
func SeedJob(t *testing.T, pool *pgxpool.Pool, employer domain.Employer, title, skills string, opts ...JobOption) domain.Job {
	t.Helper()
	ctx := context.Background()

	job := domain.Job{
		EmployerID:     employer.ID,
		CompanyID:      employer.CompanyID,
		Title:          title,
		Slug:           "job-" + uniqueSuffix(),
		Description:    "Description of " + title,
		SkillsRequired: skills,
		Location:       "Berlin",
		Salary:         50000,
		JobType:        domain.JobTypeFullTime,
		Openings:       1,
		Status:         domain.JobStatusOpen,
	}
	for _, o := range opts {
		o(&job)
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO jobs (employer_id, company_id, title, slug, description, skills_required,
		                   experience_required, location, salary, job_type, deadline, openings, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, posted_date`,
		job.EmployerID, job.CompanyID, job.Title, job.Slug, job.Description, job.SkillsRequired,
		job.ExperienceRequired, job.Location, job.Salary, string(job.JobType), job.Deadline,
		job.Openings, string(job.Status),
	).Scan(&job.ID, &job.PostedDate)
	if err != nil {
		t.Fatalf("testhelper: SeedJob: %v", err)
	}

	return job
}

// SeedApplication creates an APPLIED application.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, jobID, seekerID, resumeID int64) domain.Application {
	t.Helper()
	ctx := context.Background()

	app := domain.Application{
		JobID:       jobID,
		JobSeekerID: seekerID,
		ResumeID:    resumeID,
		Status:      domain.ApplicationStatusApplied,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO applications (job_id, job_seeker_id, resume_id, status) VALUES ($1, $2, $3, $4)
		 RETURNING id, applied_at`,
		app.JobID, app.JobSeekerID, app.ResumeID, string(app.Status),
	).Scan(&app.ID, &app.AppliedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication: %v", err)
	}

	return app
}
