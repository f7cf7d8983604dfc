// Package auth issues and verifies the portal's HS256 access tokens.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// JWTManager handles JWT access token generation and validation.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// accessClaims extends standard JWT claims with the user's portal role.
type accessClaims struct {
	jwt.RegisteredClaims
	Role domain.Role `json:"role"`
}

// GenerateAccessToken creates a signed HS256 JWT with the user ID as subject
// and the role as a custom claim.
func (m *JWTManager) GenerateAccessToken(userID int64, role domain.Role) (string, error) {
	now := m.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token and returns
// the user ID and role it was issued for.
func (m *JWTManager) ValidateAccessToken(tokenString string) (int64, domain.Role, error) {
	if tokenString == "" {
		return 0, "", errors.New("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return 0, "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token claims")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, "", fmt.Errorf("invalid subject %q", claims.Subject)
	}
	if !claims.Role.IsValid() {
		return 0, "", fmt.Errorf("invalid role %q", claims.Role)
	}

	return userID, claims.Role, nil
}
