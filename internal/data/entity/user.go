package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the closed set of roles an account may hold. Roles serialize
// as their lowercase token.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

// ParseUserRole maps a wire token onto the role enum. Any other token is
// rejected by the caller's validation, never silently coerced.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleUser, RoleAdmin:
		return UserRole(s), true
	}
	return "", false
}

// User is the persisted account record. Password holds only the bcrypt hash.
// VerificationCode and TokenExpiresAt are set and cleared together while an
// email-verification or password-reset flow is pending.
type User struct {
	ID               uuid.UUID  `db:"id"`
	Name             string     `db:"name"`
	Email            string     `db:"email"`
	Password         string     `db:"password"`
	Role             UserRole   `db:"role"`
	Verified         bool       `db:"verified"`
	VerificationCode *string    `db:"verification_code"`
	TokenExpiresAt   *time.Time `db:"token_expires_at"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}
