package shoppinglist

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
	"github.com/mealdesk/mealdesk-backend/pkg/ctxutil"
)

// Generate aggregates the user's planned recipes over an inclusive date
// range into one shopping list. Entries whose recipe was deleted after
// planning are reported in UnresolvedEntries instead of failing the call.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*domain.ShoppingList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	from := domain.PlanDate(input.From)
	to := domain.PlanDate(input.To)
	if days := int(to.Sub(from).Hours()/24) + 1; days > s.cfg.MaxShoppingListRangeDays {
		return nil, domain.NewValidationError("to", fmt.Sprintf("range must not exceed %d days", s.cfg.MaxShoppingListRangeDays))
	}

	entries, err := s.plans.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list plan entries: %w", err)
	}
	if len(entries) == 0 {
		return &domain.ShoppingList{Items: []domain.ShoppingListItem{}}, nil
	}

	// Request all thunks before resolving any so the loader can batch the
	// distinct recipe IDs into one query.
	loader := s.newRecipeLoader(userID)
	thunks := make([]func() (*domain.Recipe, error), len(entries))
	for i, e := range entries {
		thunks[i] = loader.Load(ctx, e.RecipeID)
	}

	agg := newAggregator()
	var unresolved []uuid.UUID
	for i, e := range entries {
		rec, err := thunks[i]()
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				unresolved = append(unresolved, e.ID)
				s.log.WarnContext(ctx, "plan entry references missing recipe",
					"user_id", userID,
					"entry_id", e.ID,
					"recipe_id", e.RecipeID,
				)
				continue
			}
			return nil, fmt.Errorf("resolve recipe %s: %w", e.RecipeID, err)
		}
		agg.addRecipe(rec)
	}

	return &domain.ShoppingList{
		Items:             agg.items(),
		UnresolvedEntries: unresolved,
	}, nil
}
