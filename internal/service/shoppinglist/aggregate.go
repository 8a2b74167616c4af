package shoppinglist

import (
	"github.com/google/uuid"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

// mergeKey identifies one shopping-list line. Lines merge only when both
// the normalized name and the normalized unit match; "2 cups flour" and
// "100 g flour" stay separate.
type mergeKey struct {
	name string
	unit string
}

// aggregator folds ingredient lines into merged items, preserving the order
// in which each merge key was first seen.
type aggregator struct {
	order   []mergeKey
	byKey   map[mergeKey]*domain.ShoppingListItem
	recipes map[mergeKey]map[uuid.UUID]struct{}
}

func newAggregator() *aggregator {
	return &aggregator{
		byKey:   make(map[mergeKey]*domain.ShoppingListItem),
		recipes: make(map[mergeKey]map[uuid.UUID]struct{}),
	}
}

// addRecipe folds every ingredient line of the recipe into the aggregate.
func (a *aggregator) addRecipe(rec *domain.Recipe) {
	for _, ing := range rec.Ingredients {
		a.add(rec.ID, ing)
	}
}

func (a *aggregator) add(recipeID uuid.UUID, ing domain.Ingredient) {
	key := mergeKey{
		name: domain.NormalizeText(ing.Name),
		unit: domain.NormalizeUnit(ing.Unit),
	}
	if key.name == "" {
		return
	}

	item, ok := a.byKey[key]
	if !ok {
		item = &domain.ShoppingListItem{
			Name:          key.name,
			QuantityKnown: true,
		}
		if key.unit != "" {
			unit := key.unit
			item.Unit = &unit
		}
		a.byKey[key] = item
		a.recipes[key] = make(map[uuid.UUID]struct{})
		a.order = append(a.order, key)
	}

	// One line without a quantity makes the whole item unknown; the sum of
	// the remaining lines would misrepresent the total. Never flips back.
	if ing.Quantity == nil {
		item.QuantityKnown = false
		item.Quantity = nil
	} else if item.QuantityKnown {
		if item.Quantity == nil {
			q := *ing.Quantity
			item.Quantity = &q
		} else {
			*item.Quantity += *ing.Quantity
		}
	}

	if _, seen := a.recipes[key][recipeID]; !seen {
		a.recipes[key][recipeID] = struct{}{}
		item.RecipeIDs = append(item.RecipeIDs, recipeID)
	}
}

// items returns the merged lines in first-encounter order.
func (a *aggregator) items() []domain.ShoppingListItem {
	out := make([]domain.ShoppingListItem, 0, len(a.order))
	for _, key := range a.order {
		out = append(out, *a.byKey[key])
	}
	return out
}
