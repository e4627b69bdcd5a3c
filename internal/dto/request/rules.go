package request

import "account-service/pkg/validation"

// Shared rule lists. Email and password rules are independent checks on the
// same field, so a single bad value can contribute more than one violation.

func emailRules(field, value string) []validation.Rule {
	return []validation.Rule{
		{
			Field:   field,
			Message: "Email must be at least 6 characters long",
			Valid:   func() bool { return validation.MinLength(value, 6) },
		},
		{
			Field:   field,
			Message: "Email must be a valid email address",
			Valid:   func() bool { return validation.IsEmail(value) },
		},
	}
}

func passwordRules(field, value string) []validation.Rule {
	return []validation.Rule{
		{
			Field:   field,
			Message: "Password must be at least 1 character long",
			Valid:   func() bool { return validation.MinLength(value, 1) },
		},
		{
			Field:   field,
			Message: "Password must be at least 6 characters long",
			Valid:   func() bool { return validation.MinLength(value, 6) },
		},
	}
}

func newPasswordRules(field, value string) []validation.Rule {
	return []validation.Rule{
		{
			Field:   field,
			Message: "New password is required",
			Valid:   func() bool { return validation.MinLength(value, 1) },
		},
		{
			Field:   field,
			Message: "New password must be at least 6 characters long",
			Valid:   func() bool { return validation.MinLength(value, 6) },
		},
	}
}

// confirmationRules checks presence and byte-for-byte equality with the
// password being confirmed; the two failures are distinct violations.
func confirmationRules(field, value, other string) []validation.Rule {
	return []validation.Rule{
		{
			Field:   field,
			Message: "Password confirmation is required",
			Valid:   func() bool { return validation.MinLength(value, 1) },
		},
		{
			Field:   field,
			Message: "Passwords do not match",
			Valid:   func() bool { return value == other },
		},
	}
}

func tokenRules(field, value string) []validation.Rule {
	return []validation.Rule{
		{
			Field:   field,
			Message: "Token is required",
			Valid:   func() bool { return validation.MinLength(value, 1) },
		},
	}
}
