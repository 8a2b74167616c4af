package domain

import (
	"github.com/google/uuid"
)

// ShoppingListItem is one merged line of a generated shopping list.
// Items are merged by (normalized name, normalized unit); quantities are
// summed only when every contributing ingredient line carried one.
type ShoppingListItem struct {
	Name          string
	Quantity      *float64
	Unit          *string
	QuantityKnown bool
	RecipeIDs     []uuid.UUID
}

// ShoppingList is the derived result of aggregating a user's meal plan over
// a date range. It is never persisted; re-generating over unchanged data
// yields an identical list.
type ShoppingList struct {
	Items []ShoppingListItem

	// UnresolvedEntries lists meal-plan entries whose recipe could not be
	// found (deleted after planning). The list above is still best-effort.
	UnresolvedEntries []uuid.UUID
}
