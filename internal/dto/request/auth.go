package request

import "account-service/pkg/validation"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() []validation.Violation {
	rules := emailRules("email", r.Email)
	rules = append(rules, passwordRules("password", r.Password)...)
	return validation.Apply(rules...)
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (r RegisterRequest) Validate() []validation.Violation {
	rules := []validation.Rule{
		{
			Field:   "name",
			Message: "Name must be at least 3 characters long",
			Valid:   func() bool { return validation.MinLength(r.Name, 3) },
		},
	}
	rules = append(rules, emailRules("email", r.Email)...)
	rules = append(rules, passwordRules("password", r.Password)...)
	rules = append(rules, confirmationRules("password_confirm", r.PasswordConfirm, r.Password)...)
	return validation.Apply(rules...)
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
}

func (r VerifyEmailRequest) Validate() []validation.Violation {
	return validation.Apply(tokenRules("token", r.Token)...)
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r ForgotPasswordRequest) Validate() []validation.Violation {
	return validation.Apply(emailRules("email", r.Email)...)
}

type ResetPasswordRequest struct {
	Token              string `json:"token"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

func (r ResetPasswordRequest) Validate() []validation.Violation {
	rules := tokenRules("token", r.Token)
	rules = append(rules, newPasswordRules("new_password", r.NewPassword)...)
	rules = append(rules, confirmationRules("new_password_confirm", r.NewPasswordConfirm, r.NewPassword)...)
	return validation.Apply(rules...)
}
