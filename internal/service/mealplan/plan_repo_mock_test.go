package mealplan

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

var _ planRepo = &planRepoMock{}

type planRepoMock struct {
	UpsertFunc    func(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error)
	DeleteFunc    func(ctx context.Context, userID uuid.UUID, date time.Time, mealType domain.MealType) error
	ListRangeFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error)

	calls struct {
		Upsert []struct {
			Ctx   context.Context
			Entry *domain.MealPlanEntry
		}
		Delete []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Date     time.Time
			MealType domain.MealType
		}
		ListRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
	}
	lockUpsert    sync.RWMutex
	lockDelete    sync.RWMutex
	lockListRange sync.RWMutex
}

func (mock *planRepoMock) Upsert(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error) {
	if mock.UpsertFunc == nil {
		panic("planRepoMock.UpsertFunc: method is nil but planRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.MealPlanEntry
	}{Ctx: ctx, Entry: e}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, e)
}

func (mock *planRepoMock) UpsertCalls() []struct {
	Ctx   context.Context
	Entry *domain.MealPlanEntry
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *planRepoMock) Delete(ctx context.Context, userID uuid.UUID, date time.Time, mealType domain.MealType) error {
	if mock.DeleteFunc == nil {
		panic("planRepoMock.DeleteFunc: method is nil but planRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Date     time.Time
		MealType domain.MealType
	}{Ctx: ctx, UserID: userID, Date: date, MealType: mealType}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, date, mealType)
}

func (mock *planRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Date     time.Time
	MealType domain.MealType
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
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
