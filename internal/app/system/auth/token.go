// internal/app/system/auth/token.go
package auth

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/devflowhq/devflow/internal/app/system/apperr"
)

// DefaultTokenTTL is how long an issued session credential stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims is the JWT payload for a DevFlow session.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed session credentials.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a manager signing with secret. A zero ttl falls
// back to DefaultTokenTTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a time-bounded credential carrying the session identity.
func (tm *TokenManager) Issue(u SessionUser) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		Name:   u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a credential, returning the session identity
// it carries. Expired, malformed, or wrongly-signed tokens fail with an
// auth error.
func (tm *TokenManager) Verify(credential string) (*SessionUser, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, apperr.Auth("Invalid or expired token")
	}
	return &SessionUser{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
		Name:  claims.Name,
	}, nil
}
