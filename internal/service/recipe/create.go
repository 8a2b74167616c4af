package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
	"github.com/mealdesk/mealdesk-backend/pkg/ctxutil"
)

// Create adds a new recipe for the current user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ingredients := input.ingredients()
	if len(ingredients) > s.cfg.MaxIngredientsPerRecipe {
		return nil, domain.NewValidationError("ingredients", "limit reached")
	}

	// Check recipe limit.
	count, err := s.recipes.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count recipes: %w", err)
	}
	if count >= s.cfg.MaxRecipesPerUser {
		return nil, domain.NewValidationError("recipes", "limit reached")
	}

	var created *domain.Recipe
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()
		var createErr error
		created, createErr = s.recipes.Create(txCtx, &domain.Recipe{
			ID:           uuid.New(),
			UserID:       userID,
			Name:         input.Name,
			MealType:     input.MealType,
			Ingredients:  ingredients,
			Instructions: input.Instructions,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if createErr != nil {
			return fmt.Errorf("create recipe: %w", createErr)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "recipe created", "user_id", userID, "recipe_id", created.ID)
	return created, nil
}
