package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"glade.dev/internal/services"
)

// LandmarkHandler handles landmark registry endpoints
type LandmarkHandler struct {
	landmarks *services.LandmarkService
}

// NewLandmarkHandler creates a new LandmarkHandler
func NewLandmarkHandler(ls *services.LandmarkService) *LandmarkHandler {
	return &LandmarkHandler{landmarks: ls}
}

// ListLandmarks handles GET /api/landmarks
func (h *LandmarkHandler) ListLandmarks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.landmarks.All())
}

// GetLandmark handles GET /api/landmarks/{id}
func (h *LandmarkHandler) GetLandmark(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	mark, err := h.landmarks.ByID(id)
	if err != nil {
		if errors.Is(err, services.ErrLandmarkNotFound) {
			respondError(w, http.StatusNotFound, "Landmark not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, mark)
}
