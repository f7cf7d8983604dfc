package job

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RemindExpiring notifies the employer of every open posting whose deadline
// is ReminderDaysAhead days after now. It returns the number of reminders
// sent. A failed reminder is logged and does not stop the rest.
func (s *Service) RemindExpiring(ctx context.Context, now time.Time) (int, error) {
	deadline := dateOf(now).AddDate(0, 0, s.cfg.ReminderDaysAhead)

	jobs, err := s.jobs.ListOpenWithDeadline(ctx, deadline)
	if err != nil {
		return 0, fmt.Errorf("list expiring jobs: %w", err)
	}

	sent := 0
	for _, j := range jobs {
		msg := expiryReminderMessage(j.Title, s.cfg.ReminderDaysAhead, deadline)
		if _, err := s.notifier.Send(ctx, j.EmployerUserID, msg); err != nil {
			s.log.WarnContext(ctx, "expiry reminder failed",
				slog.Int64("job_id", j.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		sent++
	}

	s.log.InfoContext(ctx, "expiry reminders sent",
		slog.String("deadline", deadline.Format(time.DateOnly)),
		slog.Int("candidates", len(jobs)),
		slog.Int("sent", sent),
	)

	return sent, nil
}
