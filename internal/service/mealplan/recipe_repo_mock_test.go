package mealplan

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

var _ recipeRepo = &recipeRepoMock{}

type recipeRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, recipeID uuid.UUID) (*domain.Recipe, error)

	calls struct {
		GetByID []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			RecipeID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *recipeRepoMock) GetByID(ctx context.Context, userID, recipeID uuid.UUID) (*domain.Recipe, error) {
	if mock.GetByIDFunc == nil {
		panic("recipeRepoMock.GetByIDFunc: method is nil but recipeRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		RecipeID uuid.UUID
	}{Ctx: ctx, UserID: userID, RecipeID: recipeID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, recipeID)
}

func (mock *recipeRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	RecipeID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
