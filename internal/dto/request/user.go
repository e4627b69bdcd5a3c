package request

import (
	"account-service/internal/data/entity"
	"account-service/pkg/validation"
)

type UpdateNameRequest struct {
	Name string `json:"name"`
}

func (r UpdateNameRequest) Validate() []validation.Violation {
	return validation.Apply(validation.Rule{
		Field:   "name",
		Message: "Name is required",
		Valid:   func() bool { return validation.MinLength(r.Name, 1) },
	})
}

// RoleUpdateRequest carries the role as its wire token so that an unknown
// role is a structured validation failure, not a decode failure.
type RoleUpdateRequest struct {
	Role string `json:"role"`
}

func (r RoleUpdateRequest) Validate() []validation.Violation {
	return validation.Apply(validation.Rule{
		Field:   "role",
		Message: "Invalid user role",
		Valid: func() bool {
			_, ok := entity.ParseUserRole(r.Role)
			return ok
		},
	})
}

type PasswordUpdateRequest struct {
	OldPassword        string `json:"old_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

func (r PasswordUpdateRequest) Validate() []validation.Violation {
	rules := []validation.Rule{
		{
			Field:   "old_password",
			Message: "Current password is required",
			Valid:   func() bool { return validation.MinLength(r.OldPassword, 1) },
		},
	}
	rules = append(rules, newPasswordRules("new_password", r.NewPassword)...)
	rules = append(rules, confirmationRules("new_password_confirm", r.NewPasswordConfirm, r.NewPassword)...)
	return validation.Apply(rules...)
}
