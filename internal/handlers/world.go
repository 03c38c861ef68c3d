package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"glade.dev/internal/generation"
	"glade.dev/internal/models"
	"glade.dev/internal/services"
)

// WorldHandler handles world and map endpoints
type WorldHandler struct {
	worlds *services.WorldService
	maps   *services.MapService
	packs  *services.PackService
	hub    *LiveHub
	base   generation.Config
}

// NewWorldHandler creates a new WorldHandler. base is the pack-free world
// config so a reload can re-apply packs from scratch.
func NewWorldHandler(ws *services.WorldService, ms *services.MapService, ps *services.PackService, hub *LiveHub, base generation.Config) *WorldHandler {
	return &WorldHandler{
		worlds: ws,
		maps:   ms,
		packs:  ps,
		hub:    hub,
		base:   base,
	}
}

// GetDefaultWorld handles GET /api/world - returns the base config's world
func (h *WorldHandler) GetDefaultWorld(w http.ResponseWriter, r *http.Request) {
	env, err := h.worlds.Default()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build world")
		return
	}
	respondJSON(w, http.StatusOK, env)
}

// GetWorld handles GET /api/worlds/{seed} - returns the world for a seed.
// Any string is a valid seed, so this never rejects the parameter.
func (h *WorldHandler) GetWorld(w http.ResponseWriter, r *http.Request) {
	seed := chi.URLParam(r, "seed")

	env, err := h.worlds.WorldForSeed(generation.SeedFromString(seed))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build world")
		return
	}
	respondJSON(w, http.StatusOK, env)
}

// GetWorldMap handles GET /api/worlds/{seed}/map - returns the overhead
// map overlay for a seed
func (h *WorldHandler) GetWorldMap(w http.ResponseWriter, r *http.Request) {
	seed := chi.URLParam(r, "seed")

	env, err := h.worlds.WorldForSeed(generation.SeedFromString(seed))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build world")
		return
	}
	respondJSON(w, http.StatusOK, h.maps.Overlay(env, h.worlds.Theme()))
}

// Reload handles POST /api/reload - re-reads packs, rebuilds the default
// world and pushes it to live clients
func (h *WorldHandler) Reload(w http.ResponseWriter, r *http.Request) {
	merged, err := h.packs.Apply(h.base)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.worlds.Reload(merged)

	env, err := h.worlds.Default()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to rebuild world")
		return
	}

	h.hub.Broadcast(models.LiveEvent{Type: "reload", World: env})
	respondJSON(w, http.StatusOK, env)
}
