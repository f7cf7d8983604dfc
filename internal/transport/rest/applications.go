package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
	"github.com/heartmarshall/jobportal-backend/internal/service/application"
)

type applicationService interface {
	Apply(ctx context.Context, input application.ApplyInput) (*domain.ApplicationView, error)
	Get(ctx context.Context, applicationID int64) (*domain.ApplicationView, error)
	ListBySeeker(ctx context.Context, seekerID int64) ([]domain.ApplicationView, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.ApplicationView, error)
	Search(ctx context.Context, input application.SearchInput) ([]domain.ApplicationView, error)
	UpdateStatus(ctx context.Context, applicationID int64, status, comment string) (*domain.ApplicationView, error)
	UpdateStatusBulk(ctx context.Context, input application.BulkStatusInput) (application.BulkResult, error)
	Withdraw(ctx context.Context, applicationID int64, reason string) (*domain.ApplicationView, error)
	AddNote(ctx context.Context, applicationID int64, text string) (*domain.ApplicationNote, error)
	UpdateNote(ctx context.Context, noteID int64, text string) (*domain.ApplicationNote, error)
	DeleteNote(ctx context.Context, noteID int64) error
}

// ApplicationHandler serves application lifecycle and note endpoints.
type ApplicationHandler struct {
	apps    applicationService
	seekers seekerResolver
	log     *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(apps applicationService, seekers seekerResolver, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{apps: apps, seekers: seekers, log: logger.With("handler", "application")}
}

type applyRequest struct {
	JobID       int64  `json:"jobId"`
	ResumeID    int64  `json:"resumeId"`
	CoverLetter string `json:"coverLetter"`
}

type bulkStatusRequest struct {
	IDs     []int64 `json:"ids"`
	Status  string  `json:"status"`
	Comment string  `json:"comment"`
}

type bulkStatusResponse struct {
	Updated []int64 `json:"updated"`
}

type noteRequest struct {
	Text string `json:"text"`
}

// Apply handles POST /api/applications on behalf of the calling seeker.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	seeker, err := callerSeeker(r.Context(), h.seekers)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.apps.Apply(r.Context(), application.ApplyInput{
		SeekerID:    seeker.ID,
		JobID:       req.JobID,
		ResumeID:    req.ResumeID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toApplicationResponse(v))
}

// Get handles GET /api/applications/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.apps.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(v))
}

// ListBySeeker handles GET /api/applications/seeker/{seekerId}.
func (h *ApplicationHandler) ListBySeeker(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "seekerId", h.apps.ListBySeeker)
}

// ListByJob handles GET /api/applications/job/{jobId}.
func (h *ApplicationHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "jobId", h.apps.ListByJob)
}

// Search handles GET /api/applications/job/{jobId}/search.
func (h *ApplicationHandler) Search(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathID(r, "jobId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := application.SearchInput{
		JobID:   jobID,
		Status:  queryString(r, "status"),
		Keyword: queryString(r, "keyword"),
	}
	if input.StartDate, err = queryDate(r, "startDate"); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if input.MinExperience, err = queryInt(r, "minExp"); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	views, err := h.apps.Search(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponses(views))
}

// UpdateStatus handles PUT /api/applications/{id}/status?status=&comment=.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	v, err := h.apps.UpdateStatus(r.Context(), id, q.Get("status"), q.Get("comment"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(v))
}

// BulkUpdateStatus handles PUT /api/applications/status.
func (h *ApplicationHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.apps.UpdateStatusBulk(r.Context(), application.BulkStatusInput{
		IDs:     req.IDs,
		Status:  req.Status,
		Comment: req.Comment,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, bulkStatusResponse{Updated: result.Updated})
}

// Withdraw handles PUT /api/applications/{id}/withdraw?reason=. Only the
// seeker who applied may withdraw.
func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	current, err := h.apps.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := requireSeeker(r.Context(), h.seekers, current.JobSeekerID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.apps.Withdraw(r.Context(), id, r.URL.Query().Get("reason"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(v))
}

// AddNote handles POST /api/applications/{id}/notes.
func (h *ApplicationHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	note, err := h.apps.AddNote(r.Context(), id, req.Text)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}

// UpdateNote handles PUT /api/notes/{id}.
func (h *ApplicationHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	note, err := h.apps.UpdateNote(r.Context(), id, req.Text)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// DeleteNote handles DELETE /api/notes/{id}.
func (h *ApplicationHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.apps.DeleteNote(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ApplicationHandler) list(w http.ResponseWriter, r *http.Request, param string, fn func(context.Context, int64) ([]domain.ApplicationView, error)) {
	id, err := pathID(r, param)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	views, err := fn(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponses(views))
}
