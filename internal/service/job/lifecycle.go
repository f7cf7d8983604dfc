package job

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// Close stops a posting from appearing in active listings and searches.
func (s *Service) Close(ctx context.Context, id int64) (*domain.Job, error) {
	return s.setStatus(ctx, id, domain.JobStatusClosed)
}

// Reopen returns a closed or filled posting to OPEN.
func (s *Service) Reopen(ctx context.Context, id int64) (*domain.Job, error) {
	return s.setStatus(ctx, id, domain.JobStatusOpen)
}

// MarkFilled records that all openings of a posting are taken.
func (s *Service) MarkFilled(ctx context.Context, id int64) (*domain.Job, error) {
	return s.setStatus(ctx, id, domain.JobStatusFilled)
}

func (s *Service) setStatus(ctx context.Context, id int64, status domain.JobStatus) (*domain.Job, error) {
	job, err := s.jobs.SetStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("set job status: %w", err)
	}

	s.log.InfoContext(ctx, "job status changed",
		slog.Int64("job_id", id),
		slog.String("status", status.String()),
	)

	return job, nil
}
