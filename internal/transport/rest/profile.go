package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
	"github.com/heartmarshall/jobportal-backend/internal/service/profile"
	"github.com/heartmarshall/jobportal-backend/pkg/ctxutil"
)

type profileService interface {
	SeekerByUserID(ctx context.Context, userID int64) (*domain.JobSeeker, error)
	EmployerByUserID(ctx context.Context, userID int64) (*profile.EmployerProfile, error)
	GetSeeker(ctx context.Context, seekerID int64) (*domain.JobSeeker, error)
	UpdateSeeker(ctx context.Context, seekerID int64, input profile.SeekerInput) (*domain.JobSeeker, error)
	GetResume(ctx context.Context, seekerID int64) (*domain.Resume, error)
	UpsertResume(ctx context.Context, seekerID int64, input profile.ResumeInput) (*domain.Resume, error)
}

// ProfileHandler serves seeker/employer profile and resume endpoints.
type ProfileHandler struct {
	profiles profileService
	log      *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(profiles profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: logger.With("handler", "profile")}
}

type seekerRequest struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Location         string `json:"location"`
	EmploymentStatus string `json:"employmentStatus"`
	ExperienceYears  int    `json:"experienceYears"`
}

type resumeRequest struct {
	Objective      string `json:"objective"`
	Education      string `json:"education"`
	Experience     string `json:"experience"`
	Skills         string `json:"skills"`
	Projects       string `json:"projects"`
	Certifications string `json:"certifications"`
}

type meResponse struct {
	Role     string            `json:"role"`
	Seeker   *seekerResponse   `json:"seeker,omitempty"`
	Employer *employerResponse `json:"employer,omitempty"`
}

// Me handles GET /api/me: the role profile of the authenticated user.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	role, _ := ctxutil.UserRoleFromCtx(ctx)

	resp := meResponse{Role: role.String()}
	switch role {
	case domain.RoleJobSeeker:
		seeker, err := h.profiles.SeekerByUserID(ctx, userID)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		s := toSeekerResponse(seeker)
		resp.Seeker = &s
	case domain.RoleEmployer:
		p, err := h.profiles.EmployerByUserID(ctx, userID)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		e := toEmployerResponse(&p.Employer, &p.Company)
		resp.Employer = &e
	default:
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetSeeker handles GET /api/seekers/{id}.
func (h *ProfileHandler) GetSeeker(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	seeker, err := h.profiles.GetSeeker(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSeekerResponse(seeker))
}

// UpdateSeeker handles PUT /api/seekers/{id}.
func (h *ProfileHandler) UpdateSeeker(w http.ResponseWriter, r *http.Request) {
	var req seekerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, ok := h.ownSeeker(w, r)
	if !ok {
		return
	}

	seeker, err := h.profiles.UpdateSeeker(r.Context(), id, profile.SeekerInput{
		Name:             req.Name,
		Phone:            req.Phone,
		Location:         req.Location,
		EmploymentStatus: req.EmploymentStatus,
		ExperienceYears:  req.ExperienceYears,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSeekerResponse(seeker))
}

// GetResume handles GET /api/seekers/{id}/resume.
func (h *ProfileHandler) GetResume(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownSeeker(w, r)
	if !ok {
		return
	}

	resume, err := h.profiles.GetResume(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toResumeResponse(resume))
}

// PutResume handles PUT /api/seekers/{id}/resume.
func (h *ProfileHandler) PutResume(w http.ResponseWriter, r *http.Request) {
	var req resumeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, ok := h.ownSeeker(w, r)
	if !ok {
		return
	}

	resume, err := h.profiles.UpsertResume(r.Context(), id, profile.ResumeInput{
		Objective:      req.Objective,
		Education:      req.Education,
		Experience:     req.Experience,
		Skills:         req.Skills,
		Projects:       req.Projects,
		Certifications: req.Certifications,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toResumeResponse(resume))
}

func (h *ProfileHandler) ownSeeker(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := pathID(r, "id")
	if err == nil {
		err = requireSeeker(r.Context(), h.profiles, id)
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return 0, false
	}
	return id, true
}
