// Package application manages the lifecycle of job applications: the
// duplicate-submission guard, status changes with their note trail, and the
// notifications sent to the opposite party on every transition.
package application

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/jobportal-backend/internal/config"
	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

type applicationRepo interface {
	Exists(ctx context.Context, seekerID, jobID int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	GetView(ctx context.Context, id int64) (*domain.ApplicationView, error)
	ListBySeeker(ctx context.Context, seekerID int64) ([]domain.ApplicationView, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.ApplicationView, error)
	Search(ctx context.Context, jobID int64, f domain.ApplicationFilter) ([]domain.ApplicationView, error)
	AppliedJobIDs(ctx context.Context, seekerID int64) ([]int64, error)
	Create(ctx context.Context, a *domain.Application) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error)
	Withdraw(ctx context.Context, id int64, reason *string) (*domain.Application, error)
}

type noteRepo interface {
	CreateNote(ctx context.Context, applicationID int64, text string) (*domain.ApplicationNote, error)
	UpdateNote(ctx context.Context, id int64, text string) (*domain.ApplicationNote, error)
	DeleteNote(ctx context.Context, id int64) error
	ListNotes(ctx context.Context, applicationID int64) ([]domain.ApplicationNote, error)
}

type jobRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
}

type seekerRepo interface {
	GetSeeker(ctx context.Context, id int64) (*domain.JobSeeker, error)
}

type resumeRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Resume, error)
}

type notifier interface {
	Send(ctx context.Context, userID int64, message string) (*domain.Notification, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the application lifecycle.
type Service struct {
	apps     applicationRepo
	notes    noteRepo
	jobs     jobRepo
	seekers  seekerRepo
	resumes  resumeRepo
	notifier notifier
	tx       txManager
	cfg      config.PortalConfig
	log      *slog.Logger
}

// NewService creates a new application service.
func NewService(
	log *slog.Logger,
	cfg config.PortalConfig,
	apps applicationRepo,
	notes noteRepo,
	jobs jobRepo,
	seekers seekerRepo,
	resumes resumeRepo,
	notifier notifier,
	tx txManager,
) *Service {
	return &Service{
		apps:     apps,
		notes:    notes,
		jobs:     jobs,
		seekers:  seekers,
		resumes:  resumes,
		notifier: notifier,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "application"),
	}
}

// BulkResult reports which applications a bulk status update changed
// before it stopped.
type BulkResult struct {
	Updated []int64
}
