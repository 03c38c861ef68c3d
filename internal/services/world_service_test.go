package services

import (
	"io"
	"log/slog"
	"reflect"
	"testing"

	"glade.dev/internal/generation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWorldServiceCachesBySeed(t *testing.T) {
	svc := NewWorldService(generation.DefaultConfig(), testLogger())

	e1, err := svc.WorldForSeed(generation.SeedFromString("glade"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	e2, err := svc.WorldForSeed(generation.SeedFromString("glade"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if e1.World != e2.World {
		t.Error("same seed should return the cached world")
	}
}

func TestWorldServiceFallbackSharesCacheEntry(t *testing.T) {
	svc := NewWorldService(generation.DefaultConfig(), testLogger())

	e1, err := svc.WorldForSeed(generation.SeedFromString(""))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	e2, err := svc.WorldForSeed(generation.SeedFromString(generation.DefaultSeed))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// Both resolve to the same 32-bit seed, so they share a cache slot.
	if e1.World != e2.World {
		t.Error("empty seed should hit the default seed's cache entry")
	}
}

func TestWorldServiceDefault(t *testing.T) {
	svc := NewWorldService(generation.DefaultConfig(), testLogger())

	env, err := svc.Default()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if env.Seed != generation.DefaultSeed {
		t.Errorf("envelope seed = %q, want %q", env.Seed, generation.DefaultSeed)
	}
	if len(env.World.Paths) != 3 {
		t.Errorf("default world has %d paths, want 3", len(env.World.Paths))
	}
}

func TestWorldServiceReloadDropsCache(t *testing.T) {
	cfg := generation.DefaultConfig()
	svc := NewWorldService(cfg, testLogger())

	e1, err := svc.Default()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	svc.Reload(cfg)

	e2, err := svc.Default()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if e1.World == e2.World {
		t.Error("reload should drop cached worlds")
	}
	if !reflect.DeepEqual(e1.World, e2.World) {
		t.Error("rebuilt world should be identical for an unchanged config")
	}
}

func TestWorldServiceBadConfig(t *testing.T) {
	cfg := generation.DefaultConfig()
	cfg.WorldSize = -1
	svc := NewWorldService(cfg, testLogger())

	if _, err := svc.Default(); err == nil {
		t.Error("expected build error for an invalid base config")
	}
}
