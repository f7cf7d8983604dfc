package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// Login authenticates a user with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return &AuthResult{AccessToken: token, User: user}, nil
}

// ValidateToken validates an access token and returns the user id and role.
// Any failure is reported as ErrUnauthorized.
func (s *Service) ValidateToken(_ context.Context, token string) (int64, domain.Role, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return userID, role, nil
}

// EmailTaken reports whether an account with the email exists.
func (s *Service) EmailTaken(ctx context.Context, email string) (bool, error) {
	taken, err := s.users.ExistsByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return false, fmt.Errorf("auth.EmailTaken: %w", err)
	}
	return taken, nil
}
