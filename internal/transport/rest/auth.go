package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/jobportal-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Location         string `json:"location"`
	EmploymentStatus string `json:"employmentStatus"`

	CompanyName        string `json:"companyName"`
	Industry           string `json:"industry"`
	CompanySize        string `json:"companySize"`
	CompanyDescription string `json:"companyDescription"`
	Website            string `json:"website"`
	Designation        string `json:"designation"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
	ProfileID   int64        `json:"profileId"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:              req.Email,
		Password:           req.Password,
		Role:               req.Role,
		Name:               req.Name,
		Phone:              req.Phone,
		Location:           req.Location,
		EmploymentStatus:   req.EmploymentStatus,
		CompanyName:        req.CompanyName,
		Industry:           req.Industry,
		CompanySize:        req.CompanySize,
		CompanyDescription: req.CompanyDescription,
		Website:            req.Website,
		Designation:        req.Designation,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// CheckEmail handles GET /api/auth/check-email?email=.
func (h *AuthHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := queryString(r, "email")
	if email == nil {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	taken, err := h.svc.EmailTaken(r.Context(), *email)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"taken": taken})
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken: result.AccessToken,
		User: userResponse{
			ID:    result.User.ID,
			Email: result.User.Email,
			Role:  result.User.Role.String(),
		},
		ProfileID: result.ProfileID,
	}
}
