package services

import (
	"errors"
	"fmt"

	"glade.dev/internal/generation"
)

// ErrLandmarkNotFound is returned when no landmark has the requested id
var ErrLandmarkNotFound = errors.New("landmark not found")

// LandmarkService answers registry lookups against the active config
type LandmarkService struct {
	worlds *WorldService
}

// NewLandmarkService creates a new LandmarkService
func NewLandmarkService(worlds *WorldService) *LandmarkService {
	return &LandmarkService{worlds: worlds}
}

// All returns the landmark registry in authored order
func (s *LandmarkService) All() []generation.Landmark {
	return s.worlds.Config().EffectiveLandmarks()
}

// ByID returns a specific landmark by its stable id
func (s *LandmarkService) ByID(id string) (generation.Landmark, error) {
	for _, m := range s.All() {
		if m.ID == id {
			return m, nil
		}
	}
	return generation.Landmark{}, fmt.Errorf("%w: %s", ErrLandmarkNotFound, id)
}
