package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// Apply submits a seeker's application to a job with the given resume.
//
// The job, seeker and resume must exist and the resume must belong to the
// seeker. A second application for the same seeker and job fails with
// domain.ErrDuplicateSubmission. The employer is notified in the same
// transaction, so a failed notification rolls the application back.
func (s *Service) Apply(ctx context.Context, input ApplyInput) (*domain.ApplicationView, error) {
	if err := input.Validate(s.cfg.MaxCoverLetter); err != nil {
		return nil, err
	}

	var coverLetter *string
	if strings.TrimSpace(input.CoverLetter) != "" {
		coverLetter = &input.CoverLetter
	}

	var view *domain.ApplicationView
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		job, err := s.jobs.GetByID(ctx, input.JobID)
		if err != nil {
			return fmt.Errorf("get job: %w", err)
		}
		seeker, err := s.seekers.GetSeeker(ctx, input.SeekerID)
		if err != nil {
			return fmt.Errorf("get seeker: %w", err)
		}
		resume, err := s.resumes.GetByID(ctx, input.ResumeID)
		if err != nil {
			return fmt.Errorf("get resume: %w", err)
		}
		if resume.JobSeekerID != seeker.ID {
			return domain.NewValidationError("resume_id", "does not belong to seeker")
		}

		exists, err := s.apps.Exists(ctx, seeker.ID, job.ID)
		if err != nil {
			return fmt.Errorf("check existing application: %w", err)
		}
		if exists {
			return fmt.Errorf("seeker %d job %d: %w", seeker.ID, job.ID, domain.ErrDuplicateSubmission)
		}

		created, err := s.apps.Create(ctx, &domain.Application{
			JobID:       job.ID,
			JobSeekerID: seeker.ID,
			ResumeID:    resume.ID,
			CoverLetter: coverLetter,
			Status:      domain.ApplicationStatusApplied,
		})
		if err != nil {
			return fmt.Errorf("create application: %w", err)
		}

		view, err = s.apps.GetView(ctx, created.ID)
		if err != nil {
			return fmt.Errorf("load application: %w", err)
		}

		if _, err := s.notifier.Send(ctx, view.EmployerUserID, newApplicationMessage(seeker.Name, job.Title)); err != nil {
			return fmt.Errorf("notify employer: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSubmission) {
			s.log.WarnContext(ctx, "duplicate application rejected",
				slog.Int64("seeker_id", input.SeekerID),
				slog.Int64("job_id", input.JobID),
			)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "application submitted",
		slog.Int64("application_id", view.ID),
		slog.Int64("seeker_id", view.JobSeekerID),
		slog.Int64("job_id", view.JobID),
	)

	return view, nil
}
