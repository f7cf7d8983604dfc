package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
	"github.com/heartmarshall/jobportal-backend/pkg/ctxutil"
)

type notificationService interface {
	List(ctx context.Context, userID int64) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
	MarkRead(ctx context.Context, userID, notificationID int64) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int, error)
}

// NotificationHandler serves the authenticated user's own notifications.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
	now func() time.Time
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification"), now: time.Now}
}

// List handles GET /api/notifications, newest first.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	items, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	now := h.now()
	out := make([]notificationResponse, 0, len(items))
	for i := range items {
		out = append(out, toNotificationResponse(&items[i], now))
	}
	writeJSON(w, http.StatusOK, out)
}

// UnreadCount handles GET /api/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	n, err := h.svc.UnreadCount(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

// MarkRead handles PUT /api/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	n, err := h.svc.MarkRead(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponse(n, h.now()))
}

// MarkAllRead handles PUT /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	n, err := h.svc.MarkAllRead(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": n})
}

func (h *NotificationHandler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return 0, false
	}
	return id, true
}
