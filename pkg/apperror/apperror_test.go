package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ErrEmptyPassword, "Password cannot be empty"},
		{ErrInvalidHashFormat, "Invalid hash format"},
		{ErrHashingError, "Error hashing password"},
		{ErrInvalidToken, "Invalid token"},
		{ErrServerError, "Internal server error"},
		{ErrWrongCredentials, "Wrong email or password"},
		{ErrEmailExist, "Email already exists"},
		{ErrUserNoLongerExist, "User no longer exists"},
		{ErrTokenNotProvided, "Token not provided"},
		{ErrPermissionDenied, "Permission denied"},
		{ErrUserNotAuthenticated, "User not authenticated"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.Error())
	}
}

func TestExceededMaxPasswordLength(t *testing.T) {
	err := ErrExceededMaxPasswordLength(72)
	require.Equal(t, "Password exceeds maximum length of 72 characters", err.Error())

	var maxErr *MaxPasswordLengthError
	require.True(t, errors.As(err, &maxErr))
	assert.Equal(t, 72, maxErr.Limit)

	// Parameter substitution is exact, not fixed.
	assert.Equal(t, "Password exceeds maximum length of 128 characters",
		ErrExceededMaxPasswordLength(128).Error())
}

func TestRenderingIsStable(t *testing.T) {
	assert.Equal(t, ErrWrongCredentials.Error(), ErrWrongCredentials.Error())
	assert.Equal(t,
		ErrExceededMaxPasswordLength(72).Error(),
		ErrExceededMaxPasswordLength(72).Error(),
	)
}
