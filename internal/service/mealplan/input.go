package mealplan

import (
	"time"

	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

// SetSlotInput assigns a recipe to one date and meal slot.
type SetSlotInput struct {
	Date     time.Time
	MealType domain.MealType
	RecipeID uuid.UUID
}

// Validate checks the input and returns a domain.ValidationError if invalid.
func (in *SetSlotInput) Validate() error {
	var fields []domain.FieldError

	if in.Date.IsZero() {
		fields = append(fields, domain.FieldError{Field: "date", Message: "is required"})
	}
	if !in.MealType.IsValid() {
		fields = append(fields, domain.FieldError{Field: "meal_type", Message: "must be one of BREAKFAST, LUNCH, DINNER, DESSERT"})
	}
	if in.RecipeID == uuid.Nil {
		fields = append(fields, domain.FieldError{Field: "recipe_id", Message: "is required"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// ClearSlotInput identifies one date and meal slot to clear.
type ClearSlotInput struct {
	Date     time.Time
	MealType domain.MealType
}

// Validate checks the input and returns a domain.ValidationError if invalid.
func (in *ClearSlotInput) Validate() error {
	var fields []domain.FieldError

	if in.Date.IsZero() {
		fields = append(fields, domain.FieldError{Field: "date", Message: "is required"})
	}
	if !in.MealType.IsValid() {
		fields = append(fields, domain.FieldError{Field: "meal_type", Message: "must be one of BREAKFAST, LUNCH, DINNER, DESSERT"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// ListRangeInput is an inclusive date range.
type ListRangeInput struct {
	From time.Time
	To   time.Time
}

// Validate checks the input and returns a domain.ValidationError if invalid.
func (in *ListRangeInput) Validate() error {
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
