package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email and username.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$04$test-hash-" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedRecipe creates a recipe with the given ingredients for the user.
// Returns a filled domain.Recipe.
func SeedRecipe(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string, ingredients []domain.Ingredient) domain.Recipe {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	recipe := domain.Recipe{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		MealType:    domain.MealTypeDinner,
		Ingredients: ingredients,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO recipes (id, user_id, name, meal_type, instructions, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		recipe.ID, recipe.UserID, recipe.Name, string(recipe.MealType), recipe.Instructions, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipe insert recipe: %v", err)
	}

	for i, ing := range ingredients {
		_, err := pool.Exec(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, position, name, quantity, unit)
			 VALUES ($1, $2, $3, $4, $5)`,
			recipe.ID, i, ing.Name, ing.Quantity, ing.Unit,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedRecipe insert ingredient[%d]: %v", i, err)
		}
	}

	return recipe
}

// SeedPlanEntry assigns a recipe to a slot in the user's meal plan.
// The date is truncated to midnight UTC. Returns a filled domain.MealPlanEntry.
func SeedPlanEntry(t *testing.T, pool *pgxpool.Pool, userID, recipeID uuid.UUID, date time.Time, mealType domain.MealType) domain.MealPlanEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.MealPlanEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      domain.PlanDate(date),
		MealType:  mealType,
		RecipeID:  recipeID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO meal_plan_entries (id, user_id, plan_date, meal_type, recipe_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.UserID, entry.Date, string(entry.MealType), entry.RecipeID, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlanEntry insert entry: %v", err)
	}

	return entry
}
