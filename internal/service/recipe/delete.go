package recipe

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
	"github.com/mealdesk/mealdesk-backend/pkg/ctxutil"
)

// Delete removes a recipe. Meal plan entries pointing at it are kept and
// surface later as unresolved entries in shopping lists.
func (s *Service) Delete(ctx context.Context, recipeID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.recipes.Delete(ctx, userID, recipeID); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}

	s.log.InfoContext(ctx, "recipe deleted", "user_id", userID, "recipe_id", recipeID)
	return nil
}
