package handler

import (
	"net/http"

	"food-kart/internal/service"

	"github.com/rs/zerolog"
)

// FoodHandler handles catalogue HTTP requests.
type FoodHandler struct {
	service service.FoodService
	logger  zerolog.Logger
}

// NewFoodHandler creates a new food handler.
func NewFoodHandler(service service.FoodService, logger zerolog.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		logger:  logger.With().Str("handler", "food").Logger(),
	}
}

// GetAll handles GET /api/foods with optional category, limit and offset.
func (h *FoodHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := parsePagination(w, r, h.logger)
	if !ok {
		return
	}

	foods, err := h.service.GetAll(r.Context(), r.URL.Query().Get("category"), limit, offset)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, foods)
}

// GetByID handles GET /api/foods/{id}.
func (h *FoodHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	food, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, food)
}

// CheckSafety handles GET /api/foods/{id}/safety for the caller's profile.
func (h *FoodHandler) CheckSafety(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.CheckSafety(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
