package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
	"github.com/mealdesk/mealdesk-backend/pkg/ctxutil"
)

// Update replaces a recipe's content, including its ingredient list.
func (s *Service) Update(ctx context.Context, recipeID uuid.UUID, input UpdateInput) (*domain.Recipe, error) {
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

	var updated *domain.Recipe
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.recipes.Update(txCtx, &domain.Recipe{
			ID:           recipeID,
			UserID:       userID,
			Name:         input.Name,
			MealType:     input.MealType,
			Ingredients:  ingredients,
			Instructions: input.Instructions,
			UpdatedAt:    time.Now().UTC(),
		})
		if updateErr != nil {
			return fmt.Errorf("update recipe: %w", updateErr)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "recipe updated", "user_id", userID, "recipe_id", recipeID)
	return updated, nil
}
