package rest

import (
	"net/http"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
	"github.com/heartmarshall/jobportal-backend/internal/transport/middleware"
)

// Handlers groups every REST handler served by the API.
type Handlers struct {
	Health        *HealthHandler
	Auth          *AuthHandler
	Jobs          *JobHandler
	Applications  *ApplicationHandler
	Profiles      *ProfileHandler
	Seekers       *SeekerHandler
	Notifications *NotificationHandler
}

// NewRouter registers all routes. Role checks are applied per route;
// authLimit wraps the public credential endpoints. Authentication itself is
// expected to run in front of the returned handler.
func NewRouter(h Handlers, authLimit middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	authed := middleware.Middleware(middleware.RequireAuth)
	seeker := middleware.RequireRole(domain.RoleJobSeeker)
	employer := middleware.RequireRole(domain.RoleEmployer)

	handle := func(pattern string, guard middleware.Middleware, fn http.HandlerFunc) {
		if guard == nil {
			mux.Handle(pattern, fn)
			return
		}
		mux.Handle(pattern, guard(fn))
	}

	handle("GET /live", nil, h.Health.Live)
	handle("GET /ready", nil, h.Health.Ready)
	handle("GET /health", nil, h.Health.Health)

	handle("POST /api/auth/register", authLimit, h.Auth.Register)
	handle("POST /api/auth/login", authLimit, h.Auth.Login)
	handle("GET /api/auth/check-email", authLimit, h.Auth.CheckEmail)
	handle("GET /api/me", authed, h.Profiles.Me)

	handle("GET /api/jobs", nil, h.Jobs.Search)
	handle("GET /api/jobs/{id}", nil, h.Jobs.Get)
	handle("POST /api/jobs", employer, h.Jobs.Create)
	handle("PUT /api/jobs/{id}", employer, h.Jobs.Update)
	handle("DELETE /api/jobs/{id}", employer, h.Jobs.Delete)
	handle("PUT /api/jobs/{id}/close", employer, h.Jobs.Close)
	handle("PUT /api/jobs/{id}/reopen", employer, h.Jobs.Reopen)
	handle("PUT /api/jobs/{id}/filled", employer, h.Jobs.MarkFilled)
	handle("GET /api/employers/{id}/jobs", employer, h.Jobs.ListByEmployer)

	handle("POST /api/applications", seeker, h.Applications.Apply)
	handle("GET /api/applications/{id}", authed, h.Applications.Get)
	handle("GET /api/applications/seeker/{seekerId}", authed, h.Applications.ListBySeeker)
	handle("GET /api/applications/job/{jobId}", authed, h.Applications.ListByJob)
	handle("GET /api/applications/job/{jobId}/search", employer, h.Applications.Search)
	handle("PUT /api/applications/status", employer, h.Applications.BulkUpdateStatus)
	handle("PUT /api/applications/{id}/status", employer, h.Applications.UpdateStatus)
	handle("PUT /api/applications/{id}/withdraw", seeker, h.Applications.Withdraw)
	handle("POST /api/applications/{id}/notes", employer, h.Applications.AddNote)
	handle("PUT /api/notes/{id}", employer, h.Applications.UpdateNote)
	handle("DELETE /api/notes/{id}", employer, h.Applications.DeleteNote)

	handle("GET /api/seekers/{id}", authed, h.Profiles.GetSeeker)
	handle("PUT /api/seekers/{id}", seeker, h.Profiles.UpdateSeeker)
	handle("GET /api/seekers/{id}/resume", seeker, h.Profiles.GetResume)
	handle("PUT /api/seekers/{id}/resume", seeker, h.Profiles.PutResume)
	handle("GET /api/seekers/{id}/applied-jobs", seeker, h.Seekers.AppliedJobs)
	handle("GET /api/seekers/{id}/applied-jobs/{jobId}", seeker, h.Seekers.HasApplied)
	handle("GET /api/seekers/{id}/recommended-jobs", seeker, h.Seekers.RecommendedJobs)
	handle("GET /api/seekers/{id}/saved-jobs", seeker, h.Seekers.SavedJobs)
	handle("GET /api/seekers/{id}/saved-jobs/{jobId}", seeker, h.Seekers.IsSaved)
	handle("POST /api/seekers/{id}/saved-jobs/{jobId}", seeker, h.Seekers.SaveJob)
	handle("DELETE /api/seekers/{id}/saved-jobs/{jobId}", seeker, h.Seekers.UnsaveJob)

	handle("GET /api/notifications", authed, h.Notifications.List)
	handle("GET /api/notifications/unread-count", authed, h.Notifications.UnreadCount)
	handle("PUT /api/notifications/read-all", authed, h.Notifications.MarkAllRead)
	handle("PUT /api/notifications/{id}/read", authed, h.Notifications.MarkRead)

	return mux
}
