// Package profile reads and edits the role profiles hanging off a user:
// seeker details, the seeker's resume, and the employer with its company.
package profile

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

type userRepo interface {
	GetSeeker(ctx context.Context, id int64) (*domain.JobSeeker, error)
	GetSeekerByUserID(ctx context.Context, userID int64) (*domain.JobSeeker, error)
	UpdateSeeker(ctx context.Context, s *domain.JobSeeker) (*domain.JobSeeker, error)
	GetEmployerByUserID(ctx context.Context, userID int64) (*domain.Employer, error)
	GetCompany(ctx context.Context, id int64) (*domain.Company, error)
}

type resumeRepo interface {
	GetBySeeker(ctx context.Context, seekerID int64) (*domain.Resume, error)
	Upsert(ctx context.Context, r *domain.Resume) (*domain.Resume, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements profile operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	resumes resumeRepo
	tx      txManager
}

// NewService creates a new profile service.
func NewService(logger *slog.Logger, users userRepo, resumes resumeRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "profile"),
		users:   users,
		resumes: resumes,
		tx:      tx,
	}
}

// EmployerProfile is an employer together with its company.
type EmployerProfile struct {
	Employer domain.Employer
	Company  domain.Company
}
