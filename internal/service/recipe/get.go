package recipe

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
	"github.com/mealdesk/mealdesk-backend/pkg/ctxutil"
)

// Get returns one recipe of the current user.
func (s *Service) Get(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.recipes.GetByID(ctx, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return rec, nil
}

// List returns all recipes of the current user ordered by name.
func (s *Service) List(ctx context.Context) ([]*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	recipes, err := s.recipes.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}
