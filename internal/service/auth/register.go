package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// Register creates an account and its role profile in one transaction: a
// seeker profile for JOB_SEEKER, or a company and employer for EMPLOYER.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.Role = strings.ToUpper(strings.TrimSpace(input.Role))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	var (
		createdUser *domain.User
		profileID   int64
	)

	// Email uniqueness is enforced by a DB constraint.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.Create(txCtx, &domain.User{
			Email:        input.Email,
			PasswordHash: string(hash),
			Role:         domain.Role(input.Role),
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		switch user.Role {
		case domain.RoleJobSeeker:
			profileID, err = s.createSeeker(txCtx, user.ID, input)
		case domain.RoleEmployer:
			profileID, err = s.createEmployer(txCtx, user.ID, input)
		}
		if err != nil {
			return err
		}

		createdUser = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(createdUser.ID, createdUser.Role)
	if err != nil {
		return nil, fmt.Errorf("auth.Register generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.Int64("user_id", createdUser.ID),
		slog.String("role", createdUser.Role.String()))

	return &AuthResult{AccessToken: token, User: createdUser, ProfileID: profileID}, nil
}

func (s *Service) createSeeker(ctx context.Context, userID int64, input RegisterInput) (int64, error) {
	seeker, err := s.users.CreateSeeker(ctx, &domain.JobSeeker{
		UserID:           userID,
		Name:             orDefault(input.Name, domain.DefaultSeekerName),
		Phone:            optional(input.Phone),
		Location:         optional(input.Location),
		EmploymentStatus: optional(input.EmploymentStatus),
	})
	if err != nil {
		return 0, fmt.Errorf("create seeker profile: %w", err)
	}
	return seeker.ID, nil
}

func (s *Service) createEmployer(ctx context.Context, userID int64, input RegisterInput) (int64, error) {
	company, err := s.users.CreateCompany(ctx, &domain.Company{
		Name:        orDefault(input.CompanyName, domain.DefaultCompanyName),
		Industry:    orDefault(input.Industry, domain.DefaultCompanyIndustry),
		Size:        optional(input.CompanySize),
		Description: optional(input.CompanyDescription),
		Website:     optional(input.Website),
		Location:    optional(input.Location),
	})
	if err != nil {
		return 0, fmt.Errorf("create company: %w", err)
	}

	employer, err := s.users.CreateEmployer(ctx, &domain.Employer{
		UserID:        userID,
		CompanyID:     company.ID,
		ContactPerson: optional(input.Name),
		Designation:   optional(input.Designation),
	})
	if err != nil {
		return 0, fmt.Errorf("create employer profile: %w", err)
	}
	return employer.ID, nil
}

// orDefault returns the sanitized value, or def when it is blank.
func orDefault(v, def string) string {
	if v = domain.PlainText(v); v != "" {
		return v
	}
	return def
}

// optional returns a pointer to the sanitized value, or nil when it is blank.
func optional(v string) *string {
	if v = domain.PlainText(v); v != "" {
		return &v
	}
	return nil
}
