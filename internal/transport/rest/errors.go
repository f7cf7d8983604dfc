package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError translates a service error into an HTTP response. Errors that
// map to no sentinel are logged and reported as 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Error: verr.Error(), Fields: make([]fieldResponse, 0, len(verr.Errors))}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrDuplicateSubmission):
		writeError(w, http.StatusConflict, domain.ErrDuplicateSubmission.Error())
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
