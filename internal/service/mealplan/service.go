// Package mealplan manages the assignment of recipes to dated meal slots.
package mealplan

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

// planRepo defines the meal plan repository interface needed by the service.
type planRepo interface {
	Upsert(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error)
	Delete(ctx context.Context, userID uuid.UUID, date time.Time, mealType domain.MealType) error
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error)
}

// recipeRepo defines the recipe lookup needed to verify slot assignments.
type recipeRepo interface {
	GetByID(ctx context.Context, userID, recipeID uuid.UUID) (*domain.Recipe, error)
}

// Service implements meal plan operations.
type Service struct {
	log     *slog.Logger
	plans   planRepo
	recipes recipeRepo
}

// NewService creates a new meal plan service instance.
func NewService(logger *slog.Logger, plans planRepo, recipes recipeRepo) *Service {
	return &Service{
		log:     logger.With("service", "mealplan"),
		plans:   plans,
		recipes: recipes,
	}
}
