// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

// Package main is the entry point for the Podium analytics dashboard.
//
// The dashboard fetches every edition from the API server once, keeps the
// table in memory and renders filters, metrics, charts and per-edition
// reports from it.
//
//	RootSupervisor ("podium-dashboard")
//	├── DataSupervisor ("data-layer")
//	│   └── snapshot warmup (one-shot)
//	└── APISupervisor ("api-layer")
//	    └── HTTP Server
//
// Configuration:
//
//	API_BASE_URL=http://127.0.0.1:8000   records API
//	DASHBOARD_PORT=8501                  listen port
//	DASHBOARD_FETCH_TIMEOUT=10s          per-fetch timeout
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

	"github.com/tomtom215/podium/internal/config"
	"github.com/tomtom215/podium/internal/dashboard"
	"github.com/tomtom215/podium/internal/logging"
	"github.com/tomtom215/podium/internal/supervisor"
	"github.com/tomtom215/podium/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	client := dashboard.NewClient(&cfg.Dashboard)
	loader := dashboard.NewLoader(client)

	logging.Info().
		Str("backend", client.Endpoint()).
		Dur("fetch_timeout", cfg.Dashboard.FetchTimeout).
		Msg("Starting Podium dashboard")

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), "podium-dashboard", supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Dashboard.Host, cfg.Dashboard.Port),
		Handler:      dashboard.NewRouter(dashboard.NewHandler(loader, cfg.Dashboard.Title), &cfg.Security),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// A failed warmup is not retried; the first page render fetches again.
	tree.AddDataService(services.NewOneShotService("snapshot-warmup", loader.Warm))
	tree.AddAPIService(services.NewHTTPServerService("dashboard-http", server, 10*time.Second))
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
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Dashboard stopped gracefully")
}
