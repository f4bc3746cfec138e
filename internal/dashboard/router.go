// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

// Package dashboard is the analytics client of the records API.
//
// It fetches every edition once through a circuit breaker, memoizes the
// normalized table, and answers every page render locally: filtering,
// headline metrics, Vega-Lite chart specs and the per-edition report.
//
// Routes:
//
//	GET /                        dashboard page (type, min_year, max_year, game)
//	GET /api/v1/health/live      liveness probe
//	GET /api/v1/health/ready     snapshot loaded
//	GET /metrics                 Prometheus exposition
package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/podium/internal/api"
	"github.com/tomtom215/podium/internal/config"
	"github.com/tomtom215/podium/internal/middleware"
)

// NewRouter wires the dashboard routes using the shared API middleware.
func NewRouter(h *Handler, sec *config.SecurityConfig) http.Handler {
	mw := api.NewChiMiddlewareFromConfig(sec)

	r := chi.NewRouter()
	r.Use(api.RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)

	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit())
		r.Use(api.APISecurityHeaders())
		r.Use(chimiddleware.Compress(5, "text/html"))
		r.Get("/", h.Dashboard)
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(mw.RateLimitHealth())
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
