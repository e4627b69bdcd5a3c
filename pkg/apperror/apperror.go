package apperror

import (
	"errors"
	"fmt"
)

// Domain failure vocabulary. The error text is the canonical client-facing
// message for that failure; services report failures only through these.
var (
	ErrEmptyPassword        = errors.New("Password cannot be empty")
	ErrInvalidHashFormat    = errors.New("Invalid hash format")
	ErrHashingError         = errors.New("Error hashing password")
	ErrInvalidToken         = errors.New("Invalid token")
	ErrServerError          = errors.New("Internal server error")
	ErrWrongCredentials     = errors.New("Wrong email or password")
	ErrEmailExist           = errors.New("Email already exists")
	ErrUserNoLongerExist    = errors.New("User no longer exists")
	ErrTokenNotProvided     = errors.New("Token not provided")
	ErrPermissionDenied     = errors.New("Permission denied")
	ErrUserNotAuthenticated = errors.New("User not authenticated")
)

// MaxPasswordLengthError reports a password longer than the hashing input cap.
type MaxPasswordLengthError struct {
	Limit int
}

func (e *MaxPasswordLengthError) Error() string {
	return fmt.Sprintf("Password exceeds maximum length of %d characters", e.Limit)
}

// ErrExceededMaxPasswordLength builds the parameterized taxonomy error.
func ErrExceededMaxPasswordLength(limit int) error {
	return &MaxPasswordLengthError{Limit: limit}
}
