// Package credential hashes and verifies secrets with bcrypt. The persistence
// layer only ever stores the resulting hash; callers hash before writing.
package credential

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash derives a one-way bcrypt hash from a secret.
func Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the secret matches the stored hash.
func Verify(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
