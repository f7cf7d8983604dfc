// Package notification delivers short text messages to portal users.
package notification

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// MaxMessageLength bounds a single notification message.
const MaxMessageLength = 1000

type notificationRepo interface {
	Create(ctx context.Context, userID int64, message string) (*domain.Notification, error)
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int64) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int, error)
	CountUnread(ctx context.Context, userID int64) (int, error)
}

// Service is the notification dispatcher.
type Service struct {
	notifications notificationRepo
	log           *slog.Logger
}

// NewService creates a new notification service.
func NewService(log *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		notifications: notifications,
		log:           log.With("service", "notification"),
	}
}
