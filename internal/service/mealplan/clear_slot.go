package mealplan

import (
	"context"
	"fmt"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
	"github.com/mealdesk/mealdesk-backend/pkg/ctxutil"
)

// ClearSlot removes the assignment for one date and meal slot.
// Returns domain.ErrNotFound if the slot was already empty.
func (s *Service) ClearSlot(ctx context.Context, input ClearSlotInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.plans.Delete(ctx, userID, domain.PlanDate(input.Date), input.MealType); err != nil {
		return fmt.Errorf("delete plan entry: %w", err)
	}

	s.log.InfoContext(ctx, "slot cleared",
		"user_id", userID,
		"date", domain.PlanDate(input.Date).Format("2006-01-02"),
		"meal_type", input.MealType,
	)
	return nil
}
