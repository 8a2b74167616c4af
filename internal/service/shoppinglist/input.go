package shoppinglist

import (
	"time"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

// GenerateInput is the inclusive date range to aggregate over.
type GenerateInput struct {
	From time.Time
	To   time.Time
}

// Validate checks the input and returns a domain.ValidationError if invalid.
func (in *GenerateInput) Validate() error {
	var fields []domain.FieldError

	if in.From.IsZero() {
		fields = append(fields, domain.FieldError{Field: "from", Message: "is required"})
	}
	if in.To.IsZero() {
		fields = append(fields, domain.FieldError{Field: "to", Message: "is required"})
	}
	if !in.From.IsZero() && !in.To.IsZero() && domain.PlanDate(in.From).After(domain.PlanDate(in.To)) {
		fields = append(fields, domain.FieldError{Field: "from", Message: "must not be after to"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}
