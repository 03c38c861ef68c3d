// Command server serves generated worlds, map overlays, and the landmark
// registry over HTTP, plus a websocket feed for live renderer clients.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glade.dev/internal/config"
	"glade.dev/internal/generation"
	"glade.dev/internal/handlers"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to the YAML config file")
		addr       = flag.String("addr", "", "listen address (overrides config)")
		dataPath   = flag.String("data", "", "data directory for world packs (overrides config)")
		seed       = flag.String("seed", "", "default world seed (overrides config)")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("loading config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *dataPath != "" {
		cfg.DataPath = *dataPath
	}
	if *seed != "" {
		cfg.World.Seed = generation.SeedFromString(*seed)
	}

	router, err := handlers.SetupRoutes(cfg, log)
	if err != nil {
		log.Error("setting up routes", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr, "seed", cfg.World.Seed.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", "error", err)
			os.Exit(1)
		}
	}
}
