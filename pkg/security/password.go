package security

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// bcryptPattern matches the modular crypt format bcrypt emits ($2a/$2b/$2y,
// two-digit cost, 53 chars of salt+digest).
var bcryptPattern = regexp.MustCompile(`^\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}$`)

// IsHash reports whether s already is a bcrypt hash.
func IsHash(s string) bool {
	return bcryptPattern.MatchString(s)
}

// HashPassword hashes a raw password with the default cost.
func HashPassword(raw string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether raw verifies against hash.
func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
