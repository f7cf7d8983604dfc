package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
	"github.com/heartmarshall/jobportal-backend/internal/service/profile"
	"github.com/heartmarshall/jobportal-backend/internal/transport/middleware"
)

//go:generate moq -out mocks_test.go -pkg rest . authService jobService seekerResolver employerResolver applicationService profileService savedJobService appliedJobs jobRecommender notificationService

const (
	seekerToken   = "seeker-token"
	employerToken = "employer-token"

	seekerUserID   int64 = 20
	seekerID       int64 = 2
	employerUserID int64 = 100
	employerID     int64 = 10
)

type tokenValidatorStub struct{}

func (tokenValidatorStub) ValidateToken(_ context.Context, token string) (int64, domain.Role, error) {
	switch token {
	case seekerToken:
		return seekerUserID, domain.RoleJobSeeker, nil
	case employerToken:
		return employerUserID, domain.RoleEmployer, nil
	}
	return 0, "", domain.ErrUnauthorized
}

// testAPI serves the full router behind the real Auth middleware, with every
// service replaced by a mock.
type testAPI struct {
	auth          *authServiceMock
	jobs          *jobServiceMock
	apps          *applicationServiceMock
	profiles      *profileServiceMock
	saved         *savedJobServiceMock
	applied       *appliedJobsMock
	recommender   *jobRecommenderMock
	notifications *notificationServiceMock

	notificationHandler *NotificationHandler
	handler             http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := discardLogger()

	api := &testAPI{
		auth:          &authServiceMock{},
		jobs:          &jobServiceMock{},
		apps:          &applicationServiceMock{},
		saved:         &savedJobServiceMock{},
		applied:       &appliedJobsMock{},
		recommender:   &jobRecommenderMock{},
		notifications: &notificationServiceMock{},
		profiles: &profileServiceMock{
			SeekerByUserIDFunc: func(ctx context.Context, userID int64) (*domain.JobSeeker, error) {
				if userID != seekerUserID {
					return nil, domain.ErrNotFound
				}
				return &domain.JobSeeker{ID: seekerID, UserID: seekerUserID, Name: "Bob Seeker"}, nil
			},
			EmployerByUserIDFunc: func(ctx context.Context, userID int64) (*profile.EmployerProfile, error) {
				if userID != employerUserID {
					return nil, domain.ErrNotFound
				}
				return &profile.EmployerProfile{
					Employer: domain.Employer{ID: employerID, UserID: employerUserID, CompanyID: 5},
					Company:  domain.Company{ID: 5, Name: "Acme Corp", Industry: "Software"},
				}, nil
			},
		},
	}

	api.notificationHandler = NewNotificationHandler(api.notifications, logger)

	router := NewRouter(Handlers{
		Health:        NewHealthHandler(&dbPingerMock{}, "test"),
		Auth:          NewAuthHandler(api.auth, logger),
		Jobs:          NewJobHandler(api.jobs, api.profiles, logger),
		Applications:  NewApplicationHandler(api.apps, api.profiles, logger),
		Profiles:      NewProfileHandler(api.profiles, logger),
		Seekers:       NewSeekerHandler(api.profiles, api.saved, api.applied, api.recommender, logger),
		Notifications: api.notificationHandler,
	}, nil)
	api.handler = middleware.Auth(tokenValidatorStub{})(router)

	return api
}

func (api *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

var errBoom = errors.New("boom")
