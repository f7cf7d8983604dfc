// Package savedjob manages seekers' job bookmarks.
package savedjob

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

type savedJobRepo interface {
	Save(ctx context.Context, seekerID, jobID int64) error
	Delete(ctx context.Context, seekerID, jobID int64) error
	Exists(ctx context.Context, seekerID, jobID int64) (bool, error)
	ListBySeeker(ctx context.Context, seekerID int64) ([]domain.SavedJobView, error)
}

type seekerRepo interface {
	GetSeeker(ctx context.Context, id int64) (*domain.JobSeeker, error)
}

type jobRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
}

// Service implements the saved-job registry.
type Service struct {
	log     *slog.Logger
	saved   savedJobRepo
	seekers seekerRepo
	jobs    jobRepo
}

// NewService creates a new saved-job service.
func NewService(logger *slog.Logger, saved savedJobRepo, seekers seekerRepo, jobs jobRepo) *Service {
	return &Service{
		log:     logger.With("service", "savedjob"),
		saved:   saved,
		seekers: seekers,
		jobs:    jobs,
	}
}

// Save bookmarks a job for a seeker. Saving twice is a no-op.
func (s *Service) Save(ctx context.Context, seekerID, jobID int64) error {
	if _, err := s.seekers.GetSeeker(ctx, seekerID); err != nil {
		return fmt.Errorf("get seeker: %w", err)
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return fmt.Errorf("get job: %w", err)
	}

	if err := s.saved.Save(ctx, seekerID, jobID); err != nil {
		return fmt.Errorf("save job: %w", err)
	}

	s.log.InfoContext(ctx, "job saved",
		slog.Int64("seeker_id", seekerID),
		slog.Int64("job_id", jobID),
	)
	return nil
}

// Unsave removes a bookmark. Removing a missing bookmark is a no-op.
func (s *Service) Unsave(ctx context.Context, seekerID, jobID int64) error {
	if err := s.saved.Delete(ctx, seekerID, jobID); err != nil {
		return fmt.Errorf("unsave job: %w", err)
	}
	return nil
}

// List returns a seeker's bookmarks, newest first.
func (s *Service) List(ctx context.Context, seekerID int64) ([]domain.SavedJobView, error) {
	if _, err := s.seekers.GetSeeker(ctx, seekerID); err != nil {
		return nil, fmt.Errorf("get seeker: %w", err)
	}

	saved, err := s.saved.ListBySeeker(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}
	return saved, nil
}

// IsSaved reports whether a seeker bookmarked a job.
func (s *Service) IsSaved(ctx context.Context, seekerID, jobID int64) (bool, error) {
	ok, err := s.saved.Exists(ctx, seekerID, jobID)
	if err != nil {
		return false, fmt.Errorf("check saved job: %w", err)
	}
	return ok, nil
}
