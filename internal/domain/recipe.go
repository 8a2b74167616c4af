package domain

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a user-owned recipe: a named dish with an ordered ingredient list.
type Recipe struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	MealType     MealType
	Ingredients  []Ingredient
	Instructions string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MealPlanEntry assigns one recipe to one date and meal-type slot for a user.
// A (user, date, slot) combination holds at most one recipe.
type MealPlanEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time // date only; normalized to midnight UTC
	MealType  MealType
	RecipeID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlanDate truncates t to a calendar date at midnight UTC.
// Meal plan entries and range queries compare dates, never times of day.
func PlanDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
