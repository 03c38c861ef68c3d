package services

import (
	"fmt"
	"log/slog"
	"sync"

	"glade.dev/internal/generation"
	"glade.dev/internal/models"
)

// WorldService builds worlds on demand and caches them by resolved seed.
// Generation is deterministic, so cached worlds never go stale; the cache
// only drops when the base config is swapped out by a reload.
type WorldService struct {
	logger *slog.Logger

	mu     sync.RWMutex
	base   generation.Config
	worlds map[uint32]*generation.World
}

// NewWorldService creates a service around a base generation config
func NewWorldService(base generation.Config, logger *slog.Logger) *WorldService {
	return &WorldService{
		logger: logger,
		base:   base,
		worlds: make(map[uint32]*generation.World),
	}
}

// WorldForSeed builds, or returns the cached, world for a seed. Cached
// worlds are shared between callers and must be treated as read-only.
func (s *WorldService) WorldForSeed(seed generation.Seed) (*models.WorldEnvelope, error) {
	key := seed.Resolve()

	s.mu.RLock()
	w, ok := s.worlds[key]
	s.mu.RUnlock()
	if ok {
		return &models.WorldEnvelope{Seed: seed.String(), World: w}, nil
	}

	cfg := s.baseConfig()
	cfg.Seed = seed

	w, err := generation.BuildWorld(cfg)
	if err != nil {
		return nil, fmt.Errorf("building world for seed %q: %w", seed.String(), err)
	}

	s.mu.Lock()
	s.worlds[key] = w
	s.mu.Unlock()

	s.logger.Info("world built",
		"seed", seed.String(),
		"resolved", key,
		"patches", len(w.Patches),
		"paths", len(w.Paths),
		"trees", len(w.Trees))

	return &models.WorldEnvelope{Seed: seed.String(), World: w}, nil
}

// Default returns the world for the base config's own seed
func (s *WorldService) Default() (*models.WorldEnvelope, error) {
	return s.WorldForSeed(s.baseConfig().Seed)
}

// Config returns the current base config
func (s *WorldService) Config() generation.Config {
	return s.baseConfig()
}

// Theme returns the active color theme
func (s *WorldService) Theme() generation.Theme {
	return generation.GetTheme(s.baseConfig().Theme)
}

// Reload swaps the base config and drops every cached world
func (s *WorldService) Reload(base generation.Config) {
	s.mu.Lock()
	s.base = base
	s.worlds = make(map[uint32]*generation.World)
	s.mu.Unlock()

	s.logger.Info("world cache dropped", "reason", "config reload")
}

func (s *WorldService) baseConfig() generation.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.base
}
