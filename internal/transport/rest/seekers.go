package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

type savedJobService interface {
	Save(ctx context.Context, seekerID, jobID int64) error
	Unsave(ctx context.Context, seekerID, jobID int64) error
	List(ctx context.Context, seekerID int64) ([]domain.SavedJobView, error)
	IsSaved(ctx context.Context, seekerID, jobID int64) (bool, error)
}

type appliedJobs interface {
	AppliedJobIDs(ctx context.Context, seekerID int64) ([]int64, error)
	HasApplied(ctx context.Context, seekerID, jobID int64) (bool, error)
}

type jobRecommender interface {
	Recommend(ctx context.Context, seekerID int64) ([]domain.JobView, error)
}

// SeekerHandler serves the job lists kept per seeker: applied, recommended
// and saved. Every route is limited to the seeker it names.
type SeekerHandler struct {
	seekers seekerResolver
	saved   savedJobService
	applied appliedJobs
	jobs    jobRecommender
	log     *slog.Logger
}

// NewSeekerHandler creates a SeekerHandler.
func NewSeekerHandler(seekers seekerResolver, saved savedJobService, applied appliedJobs, jobs jobRecommender, logger *slog.Logger) *SeekerHandler {
	return &SeekerHandler{
		seekers: seekers,
		saved:   saved,
		applied: applied,
		jobs:    jobs,
		log:     logger.With("handler", "seeker"),
	}
}

type appliedJobsResponse struct {
	JobIDs []int64 `json:"jobIds"`
}

// AppliedJobs handles GET /api/seekers/{id}/applied-jobs.
func (h *SeekerHandler) AppliedJobs(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownSeeker(w, r)
	if !ok {
		return
	}

	ids, err := h.applied.AppliedJobIDs(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	writeJSON(w, http.StatusOK, appliedJobsResponse{JobIDs: ids})
}

// HasApplied handles GET /api/seekers/{id}/applied-jobs/{jobId}.
func (h *SeekerHandler) HasApplied(w http.ResponseWriter, r *http.Request) {
	id, jobID, ok := h.ownSeekerJob(w, r)
	if !ok {
		return
	}

	applied, err := h.applied.HasApplied(r.Context(), id, jobID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"applied": applied})
}

// RecommendedJobs handles GET /api/seekers/{id}/recommended-jobs.
func (h *SeekerHandler) RecommendedJobs(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownSeeker(w, r)
	if !ok {
		return
	}

	jobs, err := h.jobs.Recommend(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponses(jobs))
}

// SavedJobs handles GET /api/seekers/{id}/saved-jobs.
func (h *SeekerHandler) SavedJobs(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownSeeker(w, r)
	if !ok {
		return
	}

	views, err := h.saved.List(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSavedJobResponses(views))
}

// IsSaved handles GET /api/seekers/{id}/saved-jobs/{jobId}.
func (h *SeekerHandler) IsSaved(w http.ResponseWriter, r *http.Request) {
	id, jobID, ok := h.ownSeekerJob(w, r)
	if !ok {
		return
	}

	saved, err := h.saved.IsSaved(r.Context(), id, jobID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"saved": saved})
}

// SaveJob handles POST /api/seekers/{id}/saved-jobs/{jobId}.
func (h *SeekerHandler) SaveJob(w http.ResponseWriter, r *http.Request) {
	id, jobID, ok := h.ownSeekerJob(w, r)
	if !ok {
		return
	}

	if err := h.saved.Save(r.Context(), id, jobID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UnsaveJob handles DELETE /api/seekers/{id}/saved-jobs/{jobId}.
func (h *SeekerHandler) UnsaveJob(w http.ResponseWriter, r *http.Request) {
	id, jobID, ok := h.ownSeekerJob(w, r)
	if !ok {
		return
	}

	if err := h.saved.Unsave(r.Context(), id, jobID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SeekerHandler) ownSeeker(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := pathID(r, "id")
	if err == nil {
		err = requireSeeker(r.Context(), h.seekers, id)
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return 0, false
	}
	return id, true
}

func (h *SeekerHandler) ownSeekerJob(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	id, ok := h.ownSeeker(w, r)
	if !ok {
		return 0, 0, false
	}
	jobID, err := pathID(r, "jobId")
	if err != nil {
		handleError(w, r, h.log, err)
		return 0, 0, false
	}
	return id, jobID, true
}
