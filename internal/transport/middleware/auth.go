package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
	"github.com/heartmarshall/jobportal-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (int64, domain.Role, error)
}

// Auth resolves a Bearer token into the user id and role on the request
// context. Requests without a token pass through anonymously; a bad token
// is rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, role, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithUserRole(ctx, role)
			recordIdentity(ctx, userID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) < 7 || !strings.EqualFold(auth[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}
