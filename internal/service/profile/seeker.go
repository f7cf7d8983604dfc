package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// SeekerByUserID returns the seeker profile of a JOB_SEEKER user.
func (s *Service) SeekerByUserID(ctx context.Context, userID int64) (*domain.JobSeeker, error) {
	seeker, err := s.users.GetSeekerByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get seeker by user: %w", err)
	}
	return seeker, nil
}

// GetSeeker returns a seeker profile by id.
func (s *Service) GetSeeker(ctx context.Context, seekerID int64) (*domain.JobSeeker, error) {
	seeker, err := s.users.GetSeeker(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("get seeker: %w", err)
	}
	return seeker, nil
}

// EmployerByUserID returns the employer profile of an EMPLOYER user with
// its company.
func (s *Service) EmployerByUserID(ctx context.Context, userID int64) (*EmployerProfile, error) {
	employer, err := s.users.GetEmployerByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get employer by user: %w", err)
	}
	company, err := s.users.GetCompany(ctx, employer.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &EmployerProfile{Employer: *employer, Company: *company}, nil
}

// UpdateSeeker overwrites the editable seeker fields and recomputes the
// profile completion.
func (s *Service) UpdateSeeker(ctx context.Context, seekerID int64, input SeekerInput) (*domain.JobSeeker, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.JobSeeker
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		seeker, err := s.users.GetSeeker(ctx, seekerID)
		if err != nil {
			return fmt.Errorf("get seeker: %w", err)
		}

		seeker.Name = domain.PlainText(input.Name)
		seeker.Phone = optional(input.Phone)
		seeker.Location = optional(input.Location)
		seeker.EmploymentStatus = optional(input.EmploymentStatus)
		seeker.ExperienceYears = input.ExperienceYears

		resume, err := s.resumes.GetBySeeker(ctx, seekerID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get resume: %w", err)
		}
		seeker.ProfileCompletion = completion(seeker, resume)

		updated, err = s.users.UpdateSeeker(ctx, seeker)
		if err != nil {
			return fmt.Errorf("update seeker: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "seeker profile updated",
		slog.Int64("seeker_id", seekerID),
		slog.Int("profile_completion", updated.ProfileCompletion),
	)

	return updated, nil
}

// completion scores a profile 0-100 in equal steps over the contact fields
// and the resume's skills.
func completion(seeker *domain.JobSeeker, resume *domain.Resume) int {
	filled := 0
	if seeker.Name != "" && seeker.Name != domain.DefaultSeekerName {
		filled++
	}
	for _, f := range []*string{seeker.Phone, seeker.Location, seeker.EmploymentStatus} {
		if f != nil && *f != "" {
			filled++
		}
	}
	if resume != nil && len(resume.SkillList()) > 0 {
		filled++
	}
	return filled * 100 / 5
}
