// Package recipe implements recipe CRUD with per-user limits.
package recipe

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/config"
	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

// recipeRepo defines the recipe repository interface needed by the service.
type recipeRepo interface {
	GetByID(ctx context.Context, userID, recipeID uuid.UUID) (*domain.Recipe, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Recipe, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	Update(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	Delete(ctx context.Context, userID, recipeID uuid.UUID) error
}

// txManager defines the transaction manager interface.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements recipe operations.
type Service struct {
	log     *slog.Logger
	recipes recipeRepo
	tx      txManager
	cfg     config.RecipesConfig
}

// NewService creates a new recipe service instance.
func NewService(logger *slog.Logger, recipes recipeRepo, tx txManager, cfg config.RecipesConfig) *Service {
	return &Service{
		log:     logger.With("service", "recipe"),
		recipes: recipes,
		tx:      tx,
		cfg:     cfg,
	}
}
