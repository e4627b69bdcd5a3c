package request

import "account-service/pkg/validation"

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50
)

// PageQuery is the list-endpoint query contract. Both fields are optional;
// absence means "use the default".
type PageQuery struct {
	Page  *int `json:"page"`
	Limit *int `json:"limit"`
}

func (q PageQuery) Validate() []validation.Violation {
	return validation.Apply(
		validation.Rule{
			Field:   "page",
			Message: "Page must be at least 1",
			Valid:   func() bool { return q.Page == nil || *q.Page >= 1 },
		},
		validation.Rule{
			Field:   "limit",
			Message: "Limit must be between 1 and 50",
			Valid:   func() bool { return q.Limit == nil || (*q.Limit >= 1 && *q.Limit <= maxLimit) },
		},
	)
}

func (q PageQuery) PageOrDefault() int {
	if q.Page == nil {
		return defaultPage
	}
	return *q.Page
}

func (q PageQuery) LimitOrDefault() int {
	if q.Limit == nil {
		return defaultLimit
	}
	return *q.Limit
}

// Offset converts the page/limit pair into a row offset.
func (q PageQuery) Offset() int {
	return (q.PageOrDefault() - 1) * q.LimitOrDefault()
}
