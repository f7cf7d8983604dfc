//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
	applicationrepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/application"
	jobrepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/job"
	notificationrepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/notification"
	resumerepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/resume"
	savedjobrepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/savedjob"
	"github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/jobportal-backend/internal/auth"
	"github.com/heartmarshall/jobportal-backend/internal/config"
	applicationsvc "github.com/heartmarshall/jobportal-backend/internal/service/application"
	authsvc "github.com/heartmarshall/jobportal-backend/internal/service/auth"
	jobsvc "github.com/heartmarshall/jobportal-backend/internal/service/job"
	notificationsvc "github.com/heartmarshall/jobportal-backend/internal/service/notification"
	profilesvc "github.com/heartmarshall/jobportal-backend/internal/service/profile"
	savedjobsvc "github.com/heartmarshall/jobportal-backend/internal/service/savedjob"
	"github.com/heartmarshall/jobportal-backend/internal/transport/middleware"
	"github.com/heartmarshall/jobportal-backend/internal/transport/rest"
)

const reminderDaysAhead = 2

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Jobs   *jobsvc.Service
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	jobs := jobrepo.New(pool)
	apps := applicationrepo.New(pool)
	resumes := resumerepo.New(pool)
	saved := savedjobrepo.New(pool)
	notifications := notificationrepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		PasswordHashCost: 4,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	notificationService := notificationsvc.NewService(logger, notifications)
	authService := authsvc.NewService(logger, users, txm, jwtMgr, authCfg)
	profileService := profilesvc.NewService(logger, users, resumes, txm)
	jobService := jobsvc.NewService(logger, jobsvc.Config{
		MatchFanoutLimit:  100,
		ReminderDaysAhead: reminderDaysAhead,
	}, jobs, users, users, resumes, notificationService, txm)
	applicationService := applicationsvc.NewService(logger, config.PortalConfig{
		MaxBulkUpdate:    50,
		MaxNoteLength:    2000,
		MaxCoverLetter:   5000,
		MatchFanoutLimit: 100,
	}, apps, apps, jobs, users, resumes, notificationService, txm)
	savedJobService := savedjobsvc.NewService(logger, saved, users, jobs)

	router := rest.NewRouter(rest.Handlers{
		Health:        rest.NewHealthHandler(pool, "test-version"),
		Auth:          rest.NewAuthHandler(authService, logger),
		Jobs:          rest.NewJobHandler(jobService, profileService, logger),
		Applications:  rest.NewApplicationHandler(applicationService, profileService, logger),
		Profiles:      rest.NewProfileHandler(profileService, logger),
		Seekers:       rest.NewSeekerHandler(profileService, savedJobService, applicationService, jobService, logger),
		Notifications: rest.NewNotificationHandler(notificationService, logger),
	}, nil)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Jobs:   jobService,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// restRequest sends a JSON request. A nil body sends no payload.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// doJSON sends a request, asserts the status and decodes the body into T.
func doJSON[T any](t *testing.T, ts *testServer, method, path, token string, body any, wantStatus int) T {
	t.Helper()

	resp := restRequest(t, ts, method, path, token, body)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "body: %s", raw)

	var out T
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return out
}

// ---------------------------------------------------------------------------
// Account helpers.
// ---------------------------------------------------------------------------

type account struct {
	Token     string
	UserID    int64
	ProfileID int64
	Email     string
}

type authBody struct {
	AccessToken string `json:"accessToken"`
	User        struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
	ProfileID int64 `json:"profileId"`
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.New().String()[:8])
}

func registerSeeker(t *testing.T, ts *testServer) account {
	t.Helper()

	email := uniqueEmail("seeker")
	body := doJSON[authBody](t, ts, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":            email,
		"password":         "securepassword123",
		"role":             "JOB_SEEKER",
		"name":             "Sam Seeker",
		"location":         "Berlin",
		"employmentStatus": "UNEMPLOYED",
	}, http.StatusCreated)

	return account{Token: body.AccessToken, UserID: body.User.ID, ProfileID: body.ProfileID, Email: email}
}

func registerEmployer(t *testing.T, ts *testServer) account {
	t.Helper()

	email := uniqueEmail("employer")
	body := doJSON[authBody](t, ts, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":       email,
		"password":    "securepassword123",
		"role":        "EMPLOYER",
		"name":        "Erin Employer",
		"companyName": "Acme " + uuid.New().String()[:6],
		"industry":    "Software",
		"designation": "CTO",
	}, http.StatusCreated)

	return account{Token: body.AccessToken, UserID: body.User.ID, ProfileID: body.ProfileID, Email: email}
}

type idBody struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func postJob(t *testing.T, ts *testServer, employer account, title, skills string) idBody {
	t.Helper()

	return doJSON[idBody](t, ts, http.MethodPost, "/api/jobs", employer.Token, map[string]any{
		"title":              title,
		"description":        "Build and run backend services.",
		"skillsRequired":     skills,
		"experienceRequired": 2,
		"location":           "Berlin",
		"salary":             85000,
		"jobType":            "FULL_TIME",
		"deadline":           time.Now().AddDate(0, 1, 0).Format(time.DateOnly),
		"openings":           2,
	}, http.StatusCreated)
}

func putResume(t *testing.T, ts *testServer, seeker account, skills string) idBody {
	t.Helper()

	return doJSON[idBody](t, ts, http.MethodPut,
		fmt.Sprintf("/api/seekers/%d/resume", seeker.ProfileID), seeker.Token,
		map[string]any{
			"objective":  "Backend engineer",
			"education":  "BSc Computer Science",
			"experience": "3 years of Go",
			"skills":     skills,
		}, http.StatusOK)
}
