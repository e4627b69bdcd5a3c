package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account-service/pkg/apperror"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("abcdef")
	require.NoError(t, err)
	require.NotEqual(t, "abcdef", hash)

	ok, err := ComparePassword(hash, "abcdef")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ComparePassword(hash, "wrongpw")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, apperror.ErrEmptyPassword)
}

func TestHashPasswordTooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordLength+1))
	require.Error(t, err)
	assert.Equal(t, "Password exceeds maximum length of 72 characters", err.Error())
}

func TestComparePasswordMalformedHash(t *testing.T) {
	_, err := ComparePassword("not-a-bcrypt-hash", "abcdef")
	assert.ErrorIs(t, err, apperror.ErrInvalidHashFormat)
}

func TestComparePasswordGuards(t *testing.T) {
	hash, err := HashPassword("abcdef")
	require.NoError(t, err)

	_, err = ComparePassword(hash, "")
	assert.ErrorIs(t, err, apperror.ErrEmptyPassword)

	_, err = ComparePassword(hash, strings.Repeat("a", MaxPasswordLength+1))
	require.Error(t, err)
	assert.Equal(t, "Password exceeds maximum length of 72 characters", err.Error())
}
