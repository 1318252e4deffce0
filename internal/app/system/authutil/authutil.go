// Package authutil wraps password hashing and verification.
//
// Secrets are stored as bcrypt hashes. Accounts imported from the legacy
// deployment may still carry a plain-text secret; IsBcryptHash lets the
// login path detect those and rehash them after a successful match.
package authutil

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLen is the minimum accepted length for a new password.
const MinPasswordLen = 6

// HashPassword returns the bcrypt hash of password at default cost.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsBcryptHash reports whether stored looks like a bcrypt hash rather than
// a legacy plain-text secret.
func IsBcryptHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$")
}
