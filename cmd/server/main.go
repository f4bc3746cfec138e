// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/podium/internal/api"
	"github.com/tomtom215/podium/internal/config"
	"github.com/tomtom215/podium/internal/database"
	"github.com/tomtom215/podium/internal/dataset"
	"github.com/tomtom215/podium/internal/logging"
	"github.com/tomtom215/podium/internal/supervisor"
	"github.com/tomtom215/podium/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("db_driver", cfg.Database.Driver).
		Str("db_path", cfg.Database.Path).
		Msg("Starting Podium API server")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize record store")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing record store")
		}
	}()
	logging.Info().Msg("Record store initialized successfully")

	if cfg.Database.SeedData {
		if err := seedBundled(db); err != nil {
			// Close before fatal exit so DuckDB checkpoints
			if closeErr := db.Close(); closeErr != nil {
				logging.Error().Err(closeErr).Msg("Error closing record store")
			}
			logging.Fatal().Err(err).Msg("Failed to seed record store")
		}
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), "podium-api", supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	router := api.NewRouter(api.NewHandler(db), &cfg.Security)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddAPIService(services.NewHTTPServerService("api-http", server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	waitForTree(ctx, tree)
	logging.Info().Msg("Application stopped gracefully")
}

// seedBundled loads the bundled editions when the store is empty.
func seedBundled(db *database.DB) error {
	logging.Info().Msg("Seeding enabled (SEED_DATA=true)")

	editions, err := dataset.Bundled()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seeded, err := db.SeedIfEmpty(ctx, editions)
	if err != nil {
		return err
	}
	if seeded {
		logging.Info().Int("editions", len(editions)).Msg("Record store seeded with bundled editions")
	} else {
		logging.Info().Msg("Record store already populated, seeding skipped")
	}
	return nil
}

// waitForTree runs the supervisor until ctx ends and reports services that
// did not stop in time.
func waitForTree(ctx context.Context, tree *supervisor.SupervisorTree) {
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}
}
