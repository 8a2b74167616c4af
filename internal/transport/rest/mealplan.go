package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
	"github.com/mealdesk/mealdesk-backend/internal/service/mealplan"
)

const dateLayout = "2006-01-02"

// planService defines the minimal interface needed by PlanHandler.
type planService interface {
	SetSlot(ctx context.Context, input mealplan.SetSlotInput) (*domain.MealPlanEntry, error)
	ClearSlot(ctx context.Context, input mealplan.ClearSlotInput) error
	ListRange(ctx context.Context, input mealplan.ListRangeInput) ([]*domain.MealPlanEntry, error)
}

// PlanHandler serves meal plan REST endpoints.
type PlanHandler struct {
	svc planService
	log *slog.Logger
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(svc planService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{svc: svc, log: logger.With("handler", "plan")}
}

type setSlotRequest struct {
	RecipeID string `json:"recipeId"`
}

type planEntryResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	MealType string `json:"mealType"`
	RecipeID string `json:"recipeId"`
}

// SetSlot handles PUT /api/plan/:date/:meal.
func (h *PlanHandler) SetSlot(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	d, mt, ok := parseSlotParams(w, ps)
	if !ok {
		return
	}

	var req setSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	entry, err := h.svc.SetSlot(r.Context(), mealplan.SetSlotInput{
		Date:     d,
		MealType: mt,
		RecipeID: recipeID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanEntryResponse(entry))
}

// ClearSlot handles DELETE /api/plan/:date/:meal.
func (h *PlanHandler) ClearSlot(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	d, mt, ok := parseSlotParams(w, ps)
	if !ok {
		return
	}

	if err := h.svc.ClearSlot(r.Context(), mealplan.ClearSlotInput{Date: d, MealType: mt}); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListRange handles GET /api/plan?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *PlanHandler) ListRange(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	from, to, ok := parseRangeQuery(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.ListRange(r.Context(), mealplan.ListRangeInput{From: from, To: to})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]planEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toPlanEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *PlanHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
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

func parseSlotParams(w http.ResponseWriter, ps httprouter.Params) (time.Time, domain.MealType, bool) {
	d, err := time.Parse(dateLayout, ps.ByName("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return time.Time{}, "", false
	}
	mt := domain.MealType(strings.ToUpper(ps.ByName("meal")))
	if !mt.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid meal type")
		return time.Time{}, "", false
	}
	return d, mt, true
}

// parseRangeQuery reads from/to query params as YYYY-MM-DD dates.
func parseRangeQuery(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	from, err := time.Parse(dateLayout, r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(dateLayout, r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func toPlanEntryResponse(e *domain.MealPlanEntry) planEntryResponse {
	return planEntryResponse{
		ID:       e.ID.String(),
		Date:     e.Date.Format(dateLayout),
		MealType: e.MealType.String(),
		RecipeID: e.RecipeID.String(),
	}
}
