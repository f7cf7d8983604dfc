// Package auth registers accounts with their role profile and issues and
// validates access tokens.
package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/jobportal-backend/internal/config"
	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// userRepo defines the account and profile persistence needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	CreateSeeker(ctx context.Context, seeker *domain.JobSeeker) (*domain.JobSeeker, error)
	CreateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error)
	CreateEmployer(ctx context.Context, employer *domain.Employer) (*domain.Employer, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID int64, role domain.Role) (string, error)
	ValidateAccessToken(token string) (int64, domain.Role, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		tx:    tx,
		jwt:   jwt,
		cfg:   cfg,
	}
}
