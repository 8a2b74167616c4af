package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
	"github.com/mealdesk/mealdesk-backend/internal/service/shoppinglist"
)

// shoppingListService defines the minimal interface needed by ShoppingListHandler.
type shoppingListService interface {
	Generate(ctx context.Context, input shoppinglist.GenerateInput) (*domain.ShoppingList, error)
}

// ShoppingListHandler serves the shopping list endpoint.
type ShoppingListHandler struct {
	svc shoppingListService
	log *slog.Logger
}

// NewShoppingListHandler creates a ShoppingListHandler.
func NewShoppingListHandler(svc shoppingListService, logger *slog.Logger) *ShoppingListHandler {
	return &ShoppingListHandler{svc: svc, log: logger.With("handler", "shopping_list")}
}

type shoppingListItemResponse struct {
	Name          string   `json:"ingredientName"`
	Quantity      *float64 `json:"quantity"`
	Unit          *string  `json:"unit"`
	QuantityKnown bool     `json:"quantityKnown"`
	RecipeIDs     []string `json:"sourceRecipeIds"`
}

type shoppingListResponse struct {
	Items             []shoppingListItemResponse `json:"items"`
	UnresolvedEntries []string                   `json:"unresolvedEntries,omitempty"`
}

// Generate handles GET /api/shopping-list?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *ShoppingListHandler) Generate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	from, to, ok := parseRangeQuery(w, r)
	if !ok {
		return
	}

	list, err := h.svc.Generate(r.Context(), shoppinglist.GenerateInput{From: from, To: to})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toShoppingListResponse(list))
}

func (h *ShoppingListHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toShoppingListResponse(list *domain.ShoppingList) shoppingListResponse {
	items := make([]shoppingListItemResponse, 0, len(list.Items))
	for _, it := range list.Items {
		ids := make([]string, 0, len(it.RecipeIDs))
		for _, id := range it.RecipeIDs {
			ids = append(ids, id.String())
		}
		items = append(items, shoppingListItemResponse{
			Name:          it.Name,
			Quantity:      it.Quantity,
			Unit:          it.Unit,
			QuantityKnown: it.QuantityKnown,
			RecipeIDs:     ids,
		})
	}

	resp := shoppingListResponse{Items: items}
	for _, id := range list.UnresolvedEntries {
		resp.UnresolvedEntries = append(resp.UnresolvedEntries, id.String())
	}
	return resp
}
