package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/jobportal-backend/pkg/ctxutil"
)

const (
	requestIDHeader    = "X-Request-Id"
	maxRequestIDLength = 128
)

// RequestID propagates the caller's X-Request-Id or assigns a new UUID.
// Oversized or non-printable ids are replaced.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
