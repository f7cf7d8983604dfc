package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// UpdateStatusBulk applies one status change to many applications, in input
// order, each in its own transaction. It stops at the first failure and
// returns it together with the ids already committed.
//
// The seeker of every updated application is notified after its commit. A
// failed notification is logged and does not stop the batch. An empty id
// list is a no-op.
func (s *Service) UpdateStatusBulk(ctx context.Context, input BulkStatusInput) (BulkResult, error) {
	if len(input.IDs) == 0 {
		return BulkResult{Updated: []int64{}}, nil
	}

	st, err := domain.ParseApplicationStatus(input.Status)
	if err != nil {
		return BulkResult{}, err
	}
	if err := input.Validate(s.cfg.MaxBulkUpdate); err != nil {
		return BulkResult{}, err
	}

	result := BulkResult{Updated: make([]int64, 0, len(input.IDs))}

	for _, id := range input.IDs {
		var view *domain.ApplicationView
		err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			var err error
			view, err = s.changeStatus(ctx, id, st, input.Comment)
			return err
		})
		if err != nil {
			s.log.WarnContext(ctx, "bulk status update stopped",
				slog.Int64("application_id", id),
				slog.Int("updated", len(result.Updated)),
				slog.String("error", err.Error()),
			)
			return result, fmt.Errorf("application %d: %w", id, err)
		}
		result.Updated = append(result.Updated, id)

		if _, err := s.notifier.Send(ctx, view.SeekerUserID, statusUpdatedMessage(view.JobTitle, st.String())); err != nil {
			s.log.ErrorContext(ctx, "bulk status notification failed",
				slog.Int64("application_id", id),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "bulk status update",
		slog.Int("count", len(result.Updated)),
		slog.String("status", st.String()),
	)

	return result, nil
}
