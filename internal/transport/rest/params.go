package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathID parses a positive int64 path value.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

func queryString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

func queryInt(r *http.Request, name string) (*int, error) {
	v := queryString(r, name)
	if v == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(*v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be an integer")
	}
	return &n, nil
}

func queryInt64(r *http.Request, name string) (*int64, error) {
	v := queryString(r, name)
	if v == nil {
		return nil, nil
	}
	n, err := strconv.ParseInt(*v, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be an integer")
	}
	return &n, nil
}

// queryDate accepts YYYY-MM-DD or RFC 3339.
func queryDate(r *http.Request, name string) (*time.Time, error) {
	v := queryString(r, name)
	if v == nil {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, *v); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a date (YYYY-MM-DD)")
	}
	return &t, nil
}
