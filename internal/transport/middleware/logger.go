package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
	"github.com/heartmarshall/jobportal-backend/pkg/ctxutil"
)

type identityHolderKey struct{}

// identityHolder lets Auth, which runs inside Logger, report the resolved
// user back to it.
type identityHolder struct {
	userID int64
	role   domain.Role
}

func withIdentityHolder(ctx context.Context, h *identityHolder) context.Context {
	return context.WithValue(ctx, identityHolderKey{}, h)
}

func recordIdentity(ctx context.Context, userID int64, role domain.Role) {
	if h, ok := ctx.Value(identityHolderKey{}).(*identityHolder); ok {
		h.userID = userID
		h.role = role
	}
}

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and the request id. Authenticated requests also
// carry user_id and role.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			holder := &identityHolder{}
			if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				holder.userID = id
				holder.role, _ = ctxutil.UserRoleFromCtx(r.Context())
			}
			next.ServeHTTP(sw, r.WithContext(withIdentityHolder(r.Context(), holder)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if holder.userID > 0 {
				attrs = append(attrs,
					slog.Int64("user_id", holder.userID),
					slog.String("role", holder.role.String()),
				)
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case sw.status == http.StatusTooManyRequests:
				level = slog.LevelWarn
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
