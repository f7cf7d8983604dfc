// Package job manages job postings: CRUD, the open/closed/filled
// lifecycle, search and recommendations, and the notifications a posting
// triggers (skill matches on creation, expiry reminders before the deadline).
package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

type jobRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	GetView(ctx context.Context, id int64) (*domain.JobView, error)
	ListActive(ctx context.Context) ([]domain.JobView, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]domain.JobView, error)
	Search(ctx context.Context, f domain.JobFilter) ([]domain.JobView, error)
	ListOpenWithDeadline(ctx context.Context, day time.Time) ([]domain.JobView, error)
	Create(ctx context.Context, j *domain.Job) (*domain.Job, error)
	Update(ctx context.Context, j *domain.Job) (*domain.Job, error)
	SetStatus(ctx context.Context, id int64, status domain.JobStatus) (*domain.Job, error)
	Delete(ctx context.Context, id int64) error
}

type employerRepo interface {
	GetEmployer(ctx context.Context, id int64) (*domain.Employer, error)
	GetCompany(ctx context.Context, id int64) (*domain.Company, error)
}

type seekerRepo interface {
	GetSeeker(ctx context.Context, id int64) (*domain.JobSeeker, error)
}

type resumeRepo interface {
	GetBySeeker(ctx context.Context, seekerID int64) (*domain.Resume, error)
	ListSkillProfiles(ctx context.Context, afterSeekerID int64, limit int) ([]domain.SeekerSkills, error)
}

type notifier interface {
	Send(ctx context.Context, userID int64, message string) (*domain.Notification, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the job directory settings.
type Config struct {
	// MatchFanoutLimit is the page size used when scanning seekers for
	// skill matches after a job is created.
	MatchFanoutLimit int
	// ReminderDaysAhead is how many days before the deadline the employer
	// is reminded.
	ReminderDaysAhead int
}

// Service implements the job directory.
type Service struct {
	log       *slog.Logger
	cfg       Config
	jobs      jobRepo
	employers employerRepo
	seekers   seekerRepo
	resumes   resumeRepo
	notifier  notifier
	tx        txManager
	now       func() time.Time
}

// NewService creates a new job service.
func NewService(
	logger *slog.Logger,
	cfg Config,
	jobs jobRepo,
	employers employerRepo,
	seekers seekerRepo,
	resumes resumeRepo,
	notifier notifier,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "job"),
		cfg:       cfg,
		jobs:      jobs,
		employers: employers,
		seekers:   seekers,
		resumes:   resumes,
		notifier:  notifier,
		tx:        tx,
		now:       time.Now,
	}
}
