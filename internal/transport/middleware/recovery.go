package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/jobportal-backend/pkg/ctxutil"
)

// Recovery returns middleware that recovers from panics, logs the error
// with a stack trace, and responds with 500 Internal Server Error.
// http.ErrAbortHandler is re-panicked so net/http can abort the response.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
