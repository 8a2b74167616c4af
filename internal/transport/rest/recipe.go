package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
	"github.com/mealdesk/mealdesk-backend/internal/service/recipe"
)

// recipeService defines the minimal interface needed by RecipeHandler.
type recipeService interface {
	Create(ctx context.Context, input recipe.CreateInput) (*domain.Recipe, error)
	Get(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
	Update(ctx context.Context, recipeID uuid.UUID, input recipe.UpdateInput) (*domain.Recipe, error)
	Delete(ctx context.Context, recipeID uuid.UUID) error
}

// RecipeHandler serves recipe REST endpoints.
type RecipeHandler struct {
	svc recipeService
	log *slog.Logger
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(svc recipeService, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{svc: svc, log: logger.With("handler", "recipe")}
}

type ingredientPayload struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
}

type recipeRequest struct {
	Name           string              `json:"name"`
	MealType       string              `json:"mealType"`
	Ingredients    []ingredientPayload `json:"ingredients,omitempty"`
	RawIngredients string              `json:"rawIngredients,omitempty"`
	Instructions   string              `json:"instructions,omitempty"`
}

type recipeResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	MealType     string              `json:"mealType"`
	Ingredients  []ingredientPayload `json:"ingredients"`
	Instructions string              `json:"instructions,omitempty"`
}

// Create handles POST /api/recipes.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Create(r.Context(), recipe.CreateInput{
		Name:           req.Name,
		MealType:       domain.MealType(req.MealType),
		Ingredients:    toIngredientInputs(req.Ingredients),
		RawIngredients: req.RawIngredients,
		Instructions:   req.Instructions,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecipeResponse(rec))
}

// Get handles GET /api/recipes/:id.
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := uuid.Parse(ps.ByName("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecipeResponse(rec))
}

// List handles GET /api/recipes.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	recipes, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]recipeResponse, 0, len(recipes))
	for _, rec := range recipes {
		out = append(out, toRecipeResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PUT /api/recipes/:id.
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := uuid.Parse(ps.ByName("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Update(r.Context(), id, recipe.UpdateInput{
		Name:           req.Name,
		MealType:       domain.MealType(req.MealType),
		Ingredients:    toIngredientInputs(req.Ingredients),
		RawIngredients: req.RawIngredients,
		Instructions:   req.Instructions,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecipeResponse(rec))
}

// Delete handles DELETE /api/recipes/:id.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := uuid.Parse(ps.ByName("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RecipeHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toIngredientInputs(payload []ingredientPayload) []recipe.IngredientInput {
	if len(payload) == 0 {
		return nil
	}
	out := make([]recipe.IngredientInput, 0, len(payload))
	for _, p := range payload {
		out = append(out, recipe.IngredientInput{
			Name:     p.Name,
			Quantity: p.Quantity,
			Unit:     p.Unit,
		})
	}
	return out
}

func toRecipeResponse(rec *domain.Recipe) recipeResponse {
	ingredients := make([]ingredientPayload, 0, len(rec.Ingredients))
	for _, ing := range rec.Ingredients {
		ingredients = append(ingredients, ingredientPayload{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	return recipeResponse{
		ID:           rec.ID.String(),
		Name:         rec.Name,
		MealType:     rec.MealType.String(),
		Ingredients:  ingredients,
		Instructions: rec.Instructions,
	}
}
