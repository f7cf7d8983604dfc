package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// Send stores an unread notification for the user. Persistence errors are
// returned to the caller, which decides whether they abort its own work.
func (s *Service) Send(ctx context.Context, userID int64, message string) (*domain.Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.NewValidationError("message", "required")
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return nil, domain.NewValidationError("message", fmt.Sprintf("max %d characters", MaxMessageLength))
	}

	n, err := s.notifications.Create(ctx, userID, message)
	if err != nil {
		return nil, fmt.Errorf("send notification: %w", err)
	}

	s.log.DebugContext(ctx, "notification sent",
		slog.Int64("user_id", userID),
		slog.Int64("notification_id", n.ID),
	)

	return n, nil
}
