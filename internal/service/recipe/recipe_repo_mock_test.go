package recipe

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

var _ recipeRepo = &recipeRepoMock{}

type recipeRepoMock struct {
	GetByIDFunc     func(ctx context.Context, userID, recipeID uuid.UUID) (*domain.Recipe, error)
	ListFunc        func(ctx context.Context, userID uuid.UUID) ([]*domain.Recipe, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	CreateFunc      func(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	UpdateFunc      func(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	DeleteFunc      func(ctx context.Context, userID, recipeID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			RecipeID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			Rec *domain.Recipe
		}
		Update []struct {
			Ctx context.Context
			Rec *domain.Recipe
		}
		Delete []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			RecipeID uuid.UUID
		}
	}
	lockGetByID     sync.RWMutex
	lockList        sync.RWMutex
	lockCountByUser sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
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

func (mock *recipeRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Recipe, error) {
	if mock.ListFunc == nil {
		panic("recipeRepoMock.ListFunc: method is nil but recipeRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *recipeRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *recipeRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("recipeRepoMock.CountByUserFunc: method is nil but recipeRepo.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *recipeRepoMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountByUser.RLock()
	calls := mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}

func (mock *recipeRepoMock) Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	if mock.CreateFunc == nil {
		panic("recipeRepoMock.CreateFunc: method is nil but recipeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Recipe
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recipeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.Recipe
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recipeRepoMock) Update(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	if mock.UpdateFunc == nil {
		panic("recipeRepoMock.UpdateFunc: method is nil but recipeRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Recipe
	}{Ctx: ctx, Rec: rec}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rec)
}

func (mock *recipeRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Rec *domain.Recipe
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *recipeRepoMock) Delete(ctx context.Context, userID, recipeID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("recipeRepoMock.DeleteFunc: method is nil but recipeRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		RecipeID uuid.UUID
	}{Ctx: ctx, UserID: userID, RecipeID: recipeID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, recipeID)
}

func (mock *recipeRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	RecipeID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
