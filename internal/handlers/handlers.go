package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"glade.dev/internal/config"
	"glade.dev/internal/models"
	"glade.dev/internal/services"
)

// version reported by the health endpoint
const version = "1.0.0"

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg config.Config, logger *slog.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize services
	packService, err := services.NewPackService(cfg.DataPath, logger)
	if err != nil {
		return nil, fmt.Errorf("pack service: %w", err)
	}
	worldCfg, err := packService.Apply(cfg.World)
	if err != nil {
		return nil, fmt.Errorf("applying packs: %w", err)
	}
	worldService := services.NewWorldService(worldCfg, logger)
	landmarkService := services.NewLandmarkService(worldService)
	mapService := services.NewMapService()

	// Build the default world up front so a bad config fails at startup
	// instead of on the first request.
	if _, err := worldService.Default(); err != nil {
		return nil, fmt.Errorf("building default world: %w", err)
	}

	// Initialize handlers
	hub := NewLiveHub(worldService, logger)
	worldHandler := NewWorldHandler(worldService, mapService, packService, hub, cfg.World)
	landmarkHandler := NewLandmarkHandler(landmarkService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// World endpoints
		r.Get("/world", worldHandler.GetDefaultWorld)
		r.Get("/worlds/{seed}", worldHandler.GetWorld)
		r.Get("/worlds/{seed}/map", worldHandler.GetWorldMap)
		r.Post("/reload", worldHandler.Reload)

		// Landmark endpoints
		r.Get("/landmarks", landmarkHandler.ListLandmarks)
		r.Get("/landmarks/{id}", landmarkHandler.GetLandmark)

		// Live world push
		r.Get("/live", hub.HandleLive)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, models.HealthResponse{Status: "ok", Version: version})
		})
	})

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
