package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// List returns the user's notifications, newest first.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Notification, error) {
	items, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

// MarkRead flags one of the user's notifications as read. A notification
// owned by someone else is reported as not found.
func (s *Service) MarkRead(ctx context.Context, userID, notificationID int64) (*domain.Notification, error) {
	n, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}
	if n.UserID != userID {
		return nil, fmt.Errorf("notification %d: %w", notificationID, domain.ErrNotFound)
	}
	if n.IsRead {
		return n, nil
	}

	n, err = s.notifications.MarkRead(ctx, notificationID)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return n, nil
}

// MarkAllRead flags every unread notification of the user as read and
// returns how many changed.
func (s *Service) MarkAllRead(ctx context.Context, userID int64) (int, error) {
	changed, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	s.log.DebugContext(ctx, "notifications marked read",
		slog.Int64("user_id", userID),
		slog.Int("count", changed),
	)

	return changed, nil
}

// UnreadCount returns the number of unread notifications of the user.
func (s *Service) UnreadCount(ctx context.Context, userID int64) (int, error) {
	n, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}
