package mealplan

import (
	"context"
	"fmt"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
	"github.com/mealdesk/mealdesk-backend/pkg/ctxutil"
)

// ListRange returns the user's plan entries within an inclusive date range,
// ordered by date then slot.
func (s *Service) ListRange(ctx context.Context, input ListRangeInput) ([]*domain.MealPlanEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.plans.ListRange(ctx, userID, domain.PlanDate(input.From), domain.PlanDate(input.To))
	if err != nil {
		return nil, fmt.Errorf("list plan entries: %w", err)
	}
	return entries, nil
}
