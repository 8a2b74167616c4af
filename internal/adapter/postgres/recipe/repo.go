// Package recipe implements the Recipe repository using PostgreSQL.
// A recipe spans two tables: the recipes row and its ordered
// recipe_ingredients rows.
package recipe

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mealdesk/mealdesk-backend/internal/adapter/postgres"
	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const recipeColumns = "id, user_id, name, meal_type, instructions, created_at, updated_at"

// Repo provides recipe persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recipe repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a recipe with its ingredient list.
// Returns domain.ErrNotFound if the recipe does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, recipeID uuid.UUID) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(recipeColumns).
		From("recipes").
		Where(sq.Eq{"id": recipeID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "recipe", recipeID)
	}

	rec, err := scanRecipe(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "recipe", recipeID)
	}

	ingredients, err := r.ingredientsByRecipeIDs(ctx, []uuid.UUID{recipeID})
	if err != nil {
		return nil, err
	}
	rec.Ingredients = ingredients[recipeID]

	return rec, nil
}

// List returns all recipes of the user ordered by name, ingredients included.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(recipeColumns).
		From("recipes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("lower(name) ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list recipes: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	recipes, err := collectRecipes(rows)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	return r.attachIngredients(ctx, recipes)
}

// ListByIDs returns the user's recipes matching ids, ingredients included.
// Missing or foreign-owned ids are simply absent from the result; the
// shopping-list generator treats those as unresolved entries.
func (r *Repo) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(recipeColumns).
		From("recipes").
		Where(sq.Eq{"user_id": userID, "id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list recipes by ids: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipes by ids: %w", err)
	}
	defer rows.Close()

	recipes, err := collectRecipes(rows)
	if err != nil {
		return nil, fmt.Errorf("list recipes by ids: %w", err)
	}

	return r.attachIngredients(ctx, recipes)
}

// CountByUser returns the number of recipes owned by the user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select("count(*)").
		From("recipes").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count recipes: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a recipe and its ingredient rows.
// Call inside TxManager.RunInTx so the two inserts commit atomically.
func (r *Repo) Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert("recipes").
		Columns("id", "user_id", "name", "meal_type", "instructions", "created_at", "updated_at").
		Values(rec.ID, rec.UserID, rec.Name, rec.MealType.String(), rec.Instructions, rec.CreatedAt, rec.UpdatedAt).
		Suffix("RETURNING " + recipeColumns).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}

	created, err := scanRecipe(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}

	if err := r.insertIngredients(ctx, rec.ID, rec.Ingredients); err != nil {
		return nil, err
	}
	created.Ingredients = rec.Ingredients

	return created, nil
}

// Update rewrites the recipe row and replaces its ingredient list.
// Call inside TxManager.RunInTx. Returns domain.ErrNotFound if the recipe
// does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Update("recipes").
		Set("name", rec.Name).
		Set("meal_type", rec.MealType.String()).
		Set("instructions", rec.Instructions).
		Set("updated_at", rec.UpdatedAt).
		Where(sq.Eq{"id": rec.ID, "user_id": rec.UserID}).
		Suffix("RETURNING " + recipeColumns).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}

	updated, err := scanRecipe(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}

	del, delArgs, err := qb.Delete("recipe_ingredients").
		Where(sq.Eq{"recipe_id": rec.ID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}
	if _, err := q.Exec(ctx, del, delArgs...); err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}

	if err := r.insertIngredients(ctx, rec.ID, rec.Ingredients); err != nil {
		return nil, err
	}
	updated.Ingredients = rec.Ingredients

	return updated, nil
}

// Delete removes a recipe (ingredients cascade). Returns domain.ErrNotFound
// if the recipe does not exist or belongs to another user. Meal-plan entries
// referencing the recipe are left in place and show up as unresolved in
// generated shopping lists.
func (r *Repo) Delete(ctx context.Context, userID, recipeID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Delete("recipes").
		Where(sq.Eq{"id": recipeID, "user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "recipe", recipeID)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "recipe", recipeID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipe %s: %w", recipeID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) insertIngredients(ctx context.Context, recipeID uuid.UUID, ingredients []domain.Ingredient) error {
	if len(ingredients) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ins := qb.Insert("recipe_ingredients").
		Columns("recipe_id", "position", "name", "quantity", "unit")
	for i, ing := range ingredients {
		ins = ins.Values(recipeID, i, ing.Name, ing.Quantity, ing.Unit)
	}

	query, args, err := ins.ToSql()
	if err != nil {
		return postgres.MapError(err, "recipe_ingredients", recipeID)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "recipe_ingredients", recipeID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Ingredient loading
// ---------------------------------------------------------------------------

// attachIngredients loads ingredient rows for all recipes in one query.
func (r *Repo) attachIngredients(ctx context.Context, recipes []*domain.Recipe) ([]*domain.Recipe, error) {
	if len(recipes) == 0 {
		return recipes, nil
	}

	ids := make([]uuid.UUID, len(recipes))
	for i, rec := range recipes {
		ids[i] = rec.ID
	}

	byRecipe, err := r.ingredientsByRecipeIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, rec := range recipes {
		rec.Ingredients = byRecipe[rec.ID]
	}
	return recipes, nil
}

func (r *Repo) ingredientsByRecipeIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.Ingredient, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select("recipe_id", "name", "quantity", "unit").
		From("recipe_ingredients").
		Where(sq.Eq{"recipe_id": ids}).
		OrderBy("recipe_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ingredients: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]domain.Ingredient)
	for rows.Next() {
		var (
			recipeID uuid.UUID
			name     string
			quantity pgtype.Float8
			unit     pgtype.Text
		)
		if err := rows.Scan(&recipeID, &name, &quantity, &unit); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		out[recipeID] = append(out[recipeID], domain.Ingredient{
			Name:     name,
			Quantity: pgFloat8ToPtr(quantity),
			Unit:     pgTextToPtr(unit),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredients: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var (
		rec      domain.Recipe
		mealType string
	)
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Name, &mealType, &rec.Instructions, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rec.MealType = domain.MealType(mealType)
	return &rec, nil
}

func collectRecipes(rows pgx.Rows) ([]*domain.Recipe, error) {
	var out []*domain.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// pgFloat8ToPtr returns a *float64 (nil when NULL).
func pgFloat8ToPtr(f pgtype.Float8) *float64 {
	if f.Valid {
		return &f.Float64
	}
	return nil
}

// pgTextToPtr returns a *string (nil when NULL).
func pgTextToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}
