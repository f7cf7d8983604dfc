package middleware

import (
	"net/http"
	"slices"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
	"github.com/heartmarshall/jobportal-backend/pkg/ctxutil"
)

// RequireAuth rejects anonymous requests with 401. It must run after Auth.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole admits only users holding one of roles. Anonymous requests
// get 401, other roles 403. It must run after Auth.
func RequireRole(roles ...domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			role, ok := ctxutil.UserRoleFromCtx(r.Context())
			if !ok || !slices.Contains(roles, role) {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
