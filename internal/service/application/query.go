package application

import (
	"context"
	"fmt"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// Get returns an application with its notes, oldest note first.
func (s *Service) Get(ctx context.Context, applicationID int64) (*domain.ApplicationView, error) {
	view, err := s.apps.GetView(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	notes, err := s.notes.ListNotes(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	view.Notes = notes

	return view, nil
}

// ListBySeeker returns the applications submitted by a seeker.
func (s *Service) ListBySeeker(ctx context.Context, seekerID int64) ([]domain.ApplicationView, error) {
	if _, err := s.seekers.GetSeeker(ctx, seekerID); err != nil {
		return nil, fmt.Errorf("get seeker: %w", err)
	}

	views, err := s.apps.ListBySeeker(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("list applications by seeker: %w", err)
	}
	return views, nil
}

// ListByJob returns the applications received for a job.
func (s *Service) ListByJob(ctx context.Context, jobID int64) ([]domain.ApplicationView, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	views, err := s.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications by job: %w", err)
	}
	return views, nil
}

// Search returns the applications of a job matching every set filter.
// An unknown status filter fails with domain.ErrInvalidStatus.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.ApplicationView, error) {
	f, err := input.filter()
	if err != nil {
		return nil, err
	}

	views, err := s.apps.Search(ctx, input.JobID, f)
	if err != nil {
		return nil, fmt.Errorf("search applications: %w", err)
	}
	return views, nil
}

// AppliedJobIDs returns the ids of the jobs a seeker has applied to.
func (s *Service) AppliedJobIDs(ctx context.Context, seekerID int64) ([]int64, error) {
	if _, err := s.seekers.GetSeeker(ctx, seekerID); err != nil {
		return nil, fmt.Errorf("get seeker: %w", err)
	}

	ids, err := s.apps.AppliedJobIDs(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("applied job ids: %w", err)
	}
	return ids, nil
}

// HasApplied reports whether the seeker has an application for the job.
func (s *Service) HasApplied(ctx context.Context, seekerID, jobID int64) (bool, error) {
	if _, err := s.seekers.GetSeeker(ctx, seekerID); err != nil {
		return false, fmt.Errorf("get seeker: %w", err)
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return false, fmt.Errorf("get job: %w", err)
	}

	ok, err := s.apps.Exists(ctx, seekerID, jobID)
	if err != nil {
		return false, fmt.Errorf("check application: %w", err)
	}
	return ok, nil
}
