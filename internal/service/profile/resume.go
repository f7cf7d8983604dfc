package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// GetResume returns a seeker's resume. A seeker without one yields
// domain.ErrNotFound.
func (s *Service) GetResume(ctx context.Context, seekerID int64) (*domain.Resume, error) {
	if _, err := s.users.GetSeeker(ctx, seekerID); err != nil {
		return nil, fmt.Errorf("get seeker: %w", err)
	}

	resume, err := s.resumes.GetBySeeker(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("get resume: %w", err)
	}
	return resume, nil
}

// UpsertResume creates or replaces the text sections of a seeker's resume.
// Uploaded file metadata is kept. The seeker's profile completion is
// refreshed in the same transaction.
func (s *Service) UpsertResume(ctx context.Context, seekerID int64, input ResumeInput) (*domain.Resume, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.Resume
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		seeker, err := s.users.GetSeeker(ctx, seekerID)
		if err != nil {
			return fmt.Errorf("get seeker: %w", err)
		}

		resume := &domain.Resume{JobSeekerID: seekerID}
		existing, err := s.resumes.GetBySeeker(ctx, seekerID)
		switch {
		case err == nil:
			resume.FileName = existing.FileName
			resume.FilePath = existing.FilePath
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get resume: %w", err)
		}

		resume.Objective = optional(input.Objective)
		resume.Education = optional(input.Education)
		resume.Experience = optional(input.Experience)
		resume.Skills = domain.PlainText(input.Skills)
		resume.Projects = optional(input.Projects)
		resume.Certifications = optional(input.Certifications)

		saved, err = s.resumes.Upsert(ctx, resume)
		if err != nil {
			return fmt.Errorf("upsert resume: %w", err)
		}

		if c := completion(seeker, saved); c != seeker.ProfileCompletion {
			seeker.ProfileCompletion = c
			if _, err := s.users.UpdateSeeker(ctx, seeker); err != nil {
				return fmt.Errorf("update profile completion: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "resume saved", slog.Int64("seeker_id", seekerID))

	return saved, nil
}
