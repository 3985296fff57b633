package util

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptySecret = errors.New("secret must not be empty")

// HashSecret returns a bcrypt hash of the shared access secret.
func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

// CheckSecret reports whether entered matches the stored bcrypt hash.
func CheckSecret(hash, entered string) bool {
	if hash == "" || entered == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(entered)) == nil
}
