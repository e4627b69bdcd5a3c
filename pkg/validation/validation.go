package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Violation is a single failed rule tagged with the wire field name.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule ties a field name and message to a predicate over the input value.
// Cross-field rules close over the whole request.
type Rule struct {
	Field   string
	Message string
	Valid   func() bool
}

// Apply evaluates every rule and collects all failures in declaration order.
// It never short-circuits: independent rules on the same field may each
// contribute a violation.
func Apply(rules ...Rule) []Violation {
	var violations []Violation
	for _, rule := range rules {
		if !rule.Valid() {
			violations = append(violations, Violation{
				Field:   rule.Field,
				Message: rule.Message,
			})
		}
	}
	return violations
}

// MinLength reports whether s is at least min bytes long.
func MinLength(s string, min int) bool {
	return len(s) >= min
}

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// Format joins violations into a single client-facing message.
func Format(violations []Violation) string {
	msgs := make([]string, 0, len(violations))
	for _, v := range violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return strings.Join(msgs, "; ")
}
