package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"account-service/pkg/apperror"
)

// MaxPasswordLength is the bcrypt input cap in bytes.
const MaxPasswordLength = 72

// HashPassword hashes a plaintext password with bcrypt. Inputs the hasher
// cannot accept surface as taxonomy errors, never as driver errors.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", apperror.ErrEmptyPassword
	}
	if len(password) > MaxPasswordLength {
		return "", apperror.ErrExceededMaxPasswordLength(MaxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.ErrHashingError
	}
	return string(hash), nil
}

// ComparePassword reports whether password matches hash. A malformed stored
// hash is an error distinct from a plain mismatch.
func ComparePassword(hash, password string) (bool, error) {
	if password == "" {
		return false, apperror.ErrEmptyPassword
	}
	if len(password) > MaxPasswordLength {
		return false, apperror.ErrExceededMaxPasswordLength(MaxPasswordLength)
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, apperror.ErrInvalidHashFormat
	}
}
