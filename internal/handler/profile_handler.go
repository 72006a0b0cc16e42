package handler

import (
	"net/http"

	"food-kart/internal/model"
	"food-kart/internal/service"

	"github.com/rs/zerolog"
)

// ProfileHandler handles health profile HTTP requests.
type ProfileHandler struct {
	service service.HealthService
	logger  zerolog.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(service service.HealthService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("handler", "profile").Logger(),
	}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r, h.logger)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Put handles PUT /api/profile.
func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r, h.logger)
	if !ok {
		return
	}

	var req model.HealthProfile
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	profile, err := h.service.UpsertProfile(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
