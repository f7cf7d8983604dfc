package auth

import "github.com/heartmarshall/jobportal-backend/internal/domain"

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
	// ProfileID is the id of the seeker or employer profile.
	ProfileID int64
}
