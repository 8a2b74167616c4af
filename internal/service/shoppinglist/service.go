// Package shoppinglist derives shopping lists from a user's meal plan.
//
// Generation is a pure read: entries in the requested range are fetched,
// their recipes batch-resolved, and ingredient lines merged by normalized
// (name, unit). Nothing is persisted; generating twice over unchanged data
// yields an identical list.
package shoppinglist

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/mealdesk/mealdesk-backend/internal/config"
	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// planRepo defines the meal plan lookup needed by the aggregator.
type planRepo interface {
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error)
}

// recipeRepo defines the batched recipe lookup needed by the aggregator.
// ListByIDs is owner-scoped and silently omits IDs that no longer exist.
type recipeRepo interface {
	ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Recipe, error)
}

// Service implements shopping list generation.
type Service struct {
	log     *slog.Logger
	plans   planRepo
	recipes recipeRepo
	cfg     config.RecipesConfig
}

// NewService creates a new shopping list service instance.
func NewService(logger *slog.Logger, plans planRepo, recipes recipeRepo, cfg config.RecipesConfig) *Service {
	return &Service{
		log:     logger.With("service", "shoppinglist"),
		plans:   plans,
		recipes: recipes,
		cfg:     cfg,
	}
}

// newRecipeLoader builds a per-call loader that batches distinct recipe IDs
// into a single owner-scoped query. Keys missing from the result resolve to
// domain.ErrNotFound, which callers treat as a dangling plan entry.
func (s *Service) newRecipeLoader(userID uuid.UUID) *dataloader.Loader[uuid.UUID, *domain.Recipe] {
	batchFn := func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Recipe] {
		recipes, err := s.recipes.ListByIDs(ctx, userID, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.Recipe], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.Recipe]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.Recipe, len(recipes))
		for _, r := range recipes {
			byID[r.ID] = r
		}

		results := make([]*dataloader.Result[*domain.Recipe], len(keys))
		for i, key := range keys {
			if r, ok := byID[key]; ok {
				results[i] = &dataloader.Result[*domain.Recipe]{Data: r}
			} else {
				results[i] = &dataloader.Result[*domain.Recipe]{Error: domain.ErrNotFound}
			}
		}
		return results
	}

	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, *domain.Recipe](wait),
		dataloader.WithBatchCapacity[uuid.UUID, *domain.Recipe](maxBatch),
	)
}
