package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
	"github.com/heartmarshall/jobportal-backend/internal/service/job"
)

type jobService interface {
	CreateJob(ctx context.Context, input job.JobInput) (*domain.JobView, error)
	UpdateJob(ctx context.Context, id int64, input job.JobInput) (*domain.JobView, error)
	DeleteJob(ctx context.Context, id int64) error
	GetJob(ctx context.Context, id int64) (*domain.JobView, error)
	Close(ctx context.Context, id int64) (*domain.Job, error)
	Reopen(ctx context.Context, id int64) (*domain.Job, error)
	MarkFilled(ctx context.Context, id int64) (*domain.Job, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]domain.JobView, error)
	Search(ctx context.Context, input job.SearchInput) ([]domain.JobView, error)
}

// JobHandler serves job posting endpoints. Mutations are limited to the
// employer that owns the posting.
type JobHandler struct {
	jobs      jobService
	employers employerResolver
	log       *slog.Logger
}

// NewJobHandler creates a JobHandler.
func NewJobHandler(jobs jobService, employers employerResolver, logger *slog.Logger) *JobHandler {
	return &JobHandler{jobs: jobs, employers: employers, log: logger.With("handler", "job")}
}

type jobRequest struct {
	CompanyID          int64   `json:"companyId"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	SkillsRequired     string  `json:"skillsRequired"`
	ExperienceRequired int     `json:"experienceRequired"`
	EducationRequired  *string `json:"educationRequired"`
	Location           string  `json:"location"`
	Salary             int64   `json:"salary"`
	JobType            string  `json:"jobType"`
	// Deadline is YYYY-MM-DD.
	Deadline string `json:"deadline"`
	Openings int    `json:"openings"`
}

func (req jobRequest) input(employerID int64) (job.JobInput, error) {
	in := job.JobInput{
		EmployerID:         employerID,
		CompanyID:          req.CompanyID,
		Title:              req.Title,
		Description:        req.Description,
		SkillsRequired:     req.SkillsRequired,
		ExperienceRequired: req.ExperienceRequired,
		EducationRequired:  req.EducationRequired,
		Location:           req.Location,
		Salary:             req.Salary,
		JobType:            req.JobType,
		Openings:           req.Openings,
	}
	if d := strings.TrimSpace(req.Deadline); d != "" {
		t, err := time.Parse(time.DateOnly, d)
		if err != nil {
			return job.JobInput{}, domain.NewValidationError("deadline", "must be a date (YYYY-MM-DD)")
		}
		in.Deadline = &t
	}
	return in, nil
}

// Search handles GET /api/jobs. Without filters it lists all open jobs.
func (h *JobHandler) Search(w http.ResponseWriter, r *http.Request) {
	input := job.SearchInput{
		Keyword:  queryString(r, "keyword"),
		Location: queryString(r, "location"),
		JobType:  queryString(r, "jobType"),
	}

	var err error
	if input.MinExperience, err = queryInt(r, "minExp"); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if input.MinSalary, err = queryInt64(r, "minSalary"); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if input.PostedAfter, err = queryDate(r, "postedAfter"); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	jobs, err := h.jobs.Search(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponses(jobs))
}

// Get handles GET /api/jobs/{id}.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.jobs.GetJob(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(v))
}

// Create handles POST /api/jobs. The posting is owned by the caller.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	employer, err := callerEmployer(r.Context(), h.employers)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input, err := req.input(employer.ID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.jobs.CreateJob(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toJobResponse(v))
}

// Update handles PUT /api/jobs/{id}.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, employerID, err := h.ownedJob(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input, err := req.input(employerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.jobs.UpdateJob(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(v))
}

// Delete handles DELETE /api/jobs/{id}.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _, err := h.ownedJob(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.jobs.DeleteJob(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Close handles PUT /api/jobs/{id}/close.
func (h *JobHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.jobs.Close)
}

// Reopen handles PUT /api/jobs/{id}/reopen.
func (h *JobHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.jobs.Reopen)
}

// MarkFilled handles PUT /api/jobs/{id}/filled.
func (h *JobHandler) MarkFilled(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.jobs.MarkFilled)
}

// ListByEmployer handles GET /api/employers/{id}/jobs.
func (h *JobHandler) ListByEmployer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	jobs, err := h.jobs.ListByEmployer(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobResponses(jobs))
}

func (h *JobHandler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, int64) (*domain.Job, error)) {
	id, _, err := h.ownedJob(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	j, err := fn(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toJobOnlyResponse(j))
}

// ownedJob resolves the {id} path value and checks that the caller's
// employer profile owns the job.
func (h *JobHandler) ownedJob(r *http.Request) (int64, int64, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return 0, 0, err
	}
	employer, err := callerEmployer(r.Context(), h.employers)
	if err != nil {
		return 0, 0, err
	}
	v, err := h.jobs.GetJob(r.Context(), id)
	if err != nil {
		return 0, 0, err
	}
	if v.EmployerID != employer.ID {
		return 0, 0, domain.ErrForbidden
	}
	return id, employer.ID, nil
}
