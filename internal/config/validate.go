package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl must exceed access_token_ttl (got %v)", c.Auth.RefreshTokenTTL)
	}

	if err := c.Recipes.validate(); err != nil {
		return fmt.Errorf("recipes: %w", err)
	}

	return nil
}

func (r *RecipesConfig) validate() error {
	if r.MaxRecipesPerUser <= 0 {
		return fmt.Errorf("max_recipes_per_user must be > 0 (got %d)", r.MaxRecipesPerUser)
	}
	if r.MaxIngredientsPerRecipe <= 0 {
		return fmt.Errorf("max_ingredients_per_recipe must be > 0 (got %d)", r.MaxIngredientsPerRecipe)
	}
	if r.MaxShoppingListRangeDays <= 0 {
		return fmt.Errorf("max_shopping_list_range_days must be > 0 (got %d)", r.MaxShoppingListRangeDays)
	}
	return nil
}
