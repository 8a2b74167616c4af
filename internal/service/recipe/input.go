package recipe

import (
	"fmt"
	"strings"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

const maxNameLength = 200

// IngredientInput is one structured ingredient line.
type IngredientInput struct {
	Name     string
	Quantity *float64
	Unit     *string
}

// CreateInput carries the data needed to create a recipe. Ingredients can be
// given either as structured lines or as newline-separated free text in
// RawIngredients; structured lines win when both are set.
type CreateInput struct {
	Name           string
	MealType       domain.MealType
	Ingredients    []IngredientInput
	RawIngredients string
	Instructions   string
}

// Validate checks the input and returns a domain.ValidationError if invalid.
func (in *CreateInput) Validate() error {
	var fields []domain.FieldError

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		fields = append(fields, domain.FieldError{Field: "name", Message: "is required"})
	} else if len(in.Name) > maxNameLength {
		fields = append(fields, domain.FieldError{Field: "name", Message: "must be at most 200 characters"})
	}

	if !in.MealType.IsValid() {
		fields = append(fields, domain.FieldError{Field: "meal_type", Message: "must be one of BREAKFAST, LUNCH, DINNER, DESSERT"})
	}

	ingredients := in.ingredients()
	if len(ingredients) == 0 {
		fields = append(fields, domain.FieldError{Field: "ingredients", Message: "at least one ingredient is required"})
	}
	fields = append(fields, validateIngredients(ingredients)...)

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// ingredients resolves the effective ingredient list.
func (in *CreateInput) ingredients() []domain.Ingredient {
	if len(in.Ingredients) > 0 {
		out := make([]domain.Ingredient, 0, len(in.Ingredients))
		for _, i := range in.Ingredients {
			out = append(out, domain.Ingredient{
				Name:     strings.TrimSpace(i.Name),
				Quantity: i.Quantity,
				Unit:     i.Unit,
			})
		}
		return out
	}
	return domain.ParseIngredientLines(in.RawIngredients)
}

// UpdateInput carries the data for a full recipe update.
type UpdateInput struct {
	Name           string
	MealType       domain.MealType
	Ingredients    []IngredientInput
	RawIngredients string
	Instructions   string
}

// Validate checks the input and returns a domain.ValidationError if invalid.
func (in *UpdateInput) Validate() error {
	c := CreateInput{
		Name:           in.Name,
		MealType:       in.MealType,
		Ingredients:    in.Ingredients,
		RawIngredients: in.RawIngredients,
		Instructions:   in.Instructions,
	}
	err := c.Validate()
	in.Name = c.Name
	return err
}

func (in *UpdateInput) ingredients() []domain.Ingredient {
	c := CreateInput{Ingredients: in.Ingredients, RawIngredients: in.RawIngredients}
	return c.ingredients()
}

func validateIngredients(ingredients []domain.Ingredient) []domain.FieldError {
	var fields []domain.FieldError
	for i, ing := range ingredients {
		if ing.Name == "" {
			fields = append(fields, domain.FieldError{
				Field:   fmt.Sprintf("ingredients[%d].name", i),
				Message: "is required",
			})
		}
		if ing.Quantity != nil && *ing.Quantity <= 0 {
			fields = append(fields, domain.FieldError{
				Field:   fmt.Sprintf("ingredients[%d].quantity", i),
				Message: "must be greater than zero",
			})
		}
	}
	return fields
}
