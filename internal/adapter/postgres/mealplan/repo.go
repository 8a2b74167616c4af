// Package mealplan implements the meal plan entry repository using PostgreSQL.
package mealplan

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mealdesk/mealdesk-backend/internal/adapter/postgres"
	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const entryColumns = "id, user_id, plan_date, meal_type, recipe_id, created_at, updated_at"

// slotOrderSQL sorts meal types by their position within a day rather than
// alphabetically. Must stay in sync with domain.MealType.SlotOrder.
const slotOrderSQL = `CASE meal_type
	WHEN 'BREAKFAST' THEN 0
	WHEN 'LUNCH' THEN 1
	WHEN 'DINNER' THEN 2
	WHEN 'DESSERT' THEN 3
	ELSE 4 END`

// Repo provides meal plan entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new meal plan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert creates or replaces the entry for (user, date, slot) and returns
// the persisted row. The unique constraint makes the slot hold at most one
// recipe.
func (r *Repo) Upsert(ctx context.Context, e *domain.MealPlanEntry) (*domain.MealPlanEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert("meal_plan_entries").
		Columns("id", "user_id", "plan_date", "meal_type", "recipe_id", "created_at", "updated_at").
		Values(e.ID, e.UserID, e.Date, e.MealType.String(), e.RecipeID, e.CreatedAt, e.UpdatedAt).
		Suffix(`ON CONFLICT (user_id, plan_date, meal_type)
			DO UPDATE SET recipe_id = EXCLUDED.recipe_id, updated_at = EXCLUDED.updated_at
			RETURNING ` + entryColumns).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "meal_plan_entry", e.ID)
	}

	entry, err := scanEntry(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "meal_plan_entry", e.ID)
	}
	return entry, nil
}

// Delete clears the (user, date, slot) entry. Returns domain.ErrNotFound if
// the slot was already empty.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, date time.Time, mealType domain.MealType) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Delete("meal_plan_entries").
		Where(sq.Eq{"user_id": userID, "plan_date": date, "meal_type": mealType.String()}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "meal_plan_entry", userID)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "meal_plan_entry", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meal_plan_entry %s %s: %w", date.Format(time.DateOnly), mealType, domain.ErrNotFound)
	}
	return nil
}

// ListRange returns the user's entries with from ≤ plan_date ≤ to, ordered
// by date then slot. The order is what makes shopping-list generation
// deterministic.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.MealPlanEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(entryColumns).
		From("meal_plan_entries").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"plan_date": from}).
		Where(sq.LtOrEq{"plan_date": to}).
		OrderBy("plan_date ASC", slotOrderSQL+" ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list meal plan entries: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list meal plan entries: %w", err)
	}
	defer rows.Close()

	var out []*domain.MealPlanEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meal plan entry: %w", err)
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meal plan entries: %w", err)
	}
	return out, nil
}

func scanEntry(row pgx.Row) (*domain.MealPlanEntry, error) {
	var (
		e        domain.MealPlanEntry
		mealType string
	)
	err := row.Scan(&e.ID, &e.UserID, &e.Date, &mealType, &e.RecipeID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.MealType = domain.MealType(mealType)
	e.Date = domain.PlanDate(e.Date)
	return &e, nil
}
