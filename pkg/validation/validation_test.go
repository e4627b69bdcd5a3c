package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCollectsAllFailures(t *testing.T) {
	violations := Apply(
		Rule{Field: "a", Message: "first", Valid: func() bool { return false }},
		Rule{Field: "b", Message: "ok", Valid: func() bool { return true }},
		Rule{Field: "a", Message: "second", Valid: func() bool { return false }},
	)

	require.Len(t, violations, 2)
	assert.Equal(t, Violation{Field: "a", Message: "first"}, violations[0])
	assert.Equal(t, Violation{Field: "a", Message: "second"}, violations[1])
}

func TestApplyNoRulesNoViolations(t *testing.T) {
	assert.Empty(t, Apply())
}

func TestMinLength(t *testing.T) {
	assert.True(t, MinLength("abcdef", 6))
	assert.False(t, MinLength("abcde", 6))
	assert.False(t, MinLength("", 1))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a@b.co"))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail(""))
}

func TestFormat(t *testing.T) {
	msg := Format([]Violation{
		{Field: "email", Message: "Email must be a valid email address"},
		{Field: "password", Message: "Password must be at least 6 characters long"},
	})
	assert.Equal(t,
		"email: Email must be a valid email address; password: Password must be at least 6 characters long",
		msg)
}
