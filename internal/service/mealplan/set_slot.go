package mealplan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
	"github.com/mealdesk/mealdesk-backend/pkg/ctxutil"
)

// SetSlot assigns a recipe to a date and meal slot, replacing any previous
// assignment for that slot.
func (s *Service) SetSlot(ctx context.Context, input SetSlotInput) (*domain.MealPlanEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The recipe must exist and belong to the user at assignment time.
	// It can still be deleted afterwards; the entry then shows up as
	// unresolved in shopping lists.
	if _, err := s.recipes.GetByID(ctx, userID, input.RecipeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("recipe_id", "recipe not found")
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	now := time.Now().UTC()
	entry, err := s.plans.Upsert(ctx, &domain.MealPlanEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      domain.PlanDate(input.Date),
		MealType:  input.MealType,
		RecipeID:  input.RecipeID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert plan entry: %w", err)
	}

	s.log.InfoContext(ctx, "slot set",
		"user_id", userID,
		"date", entry.Date.Format("2006-01-02"),
		"meal_type", entry.MealType,
		"recipe_id", entry.RecipeID,
	)
	return entry, nil
}
