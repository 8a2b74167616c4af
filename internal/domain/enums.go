package domain

// MealType represents the slot a recipe occupies in a daily meal plan.
type MealType string

const (
	MealTypeBreakfast MealType = "BREAKFAST"
	MealTypeLunch     MealType = "LUNCH"
	MealTypeDinner    MealType = "DINNER"
	MealTypeDessert   MealType = "DESSERT"
)

func (m MealType) String() string { return string(m) }

func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeDessert:
		return true
	}
	return false
}

// SlotOrder returns the position of the meal type within a day.
// Used to give plan listings and shopping-list aggregation a stable order.
func (m MealType) SlotOrder() int {
	switch m {
	case MealTypeBreakfast:
		return 0
	case MealTypeLunch:
		return 1
	case MealTypeDinner:
		return 2
	case MealTypeDessert:
		return 3
	}
	return 4
}

// MealTypes lists all valid meal types in slot order.
func MealTypes() []MealType {
	return []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeDessert}
}
