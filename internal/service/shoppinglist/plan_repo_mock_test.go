package shoppinglist

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

var _ planRepo = &planRepoMock{}

type planRepoMock struct {
	ListRangeFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error)

	calls struct {
		ListRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
	}
	lockListRange sync.RWMutex
}

func (mock *planRepoMock) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error) {
	if mock.ListRangeFunc == nil {
		panic("planRepoMock.ListRangeFunc: method is nil but planRepo.ListRange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{Ctx: ctx, UserID: userID, From: from, To: to}
	mock.lockListRange.Lock()
	mock.calls.ListRange = append(mock.calls.ListRange, callInfo)
	mock.lockListRange.Unlock()
	return mock.ListRangeFunc(ctx, userID, from, to)
}

func (mock *planRepoMock) ListRangeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockListRange.RLock()
	calls := mock.calls.ListRange
	mock.lockListRange.RUnlock()
	return calls
}
