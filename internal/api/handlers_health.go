// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/podium/internal/models"
)

// readyPingTimeout bounds the record store ping in HealthReady.
const readyPingTimeout = 2 * time.Second

// HealthLive handles liveness probe requests
//
// @Summary Liveness probe
// @Description Returns 200 OK if the process is alive, regardless of the record store.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests
//
// @Summary Readiness probe
// @Description Returns 200 when the record store answers a ping, 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is ready"
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus} "Service is not ready"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
	defer cancel()

	health := models.HealthStatus{
		Status:  "ready",
		Version: Version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	if h.store != nil {
		health.DatabaseDriver = h.store.Driver()
		health.DatabaseConnected = h.store.Ping(ctx) == nil
	}

	statusCode := http.StatusOK
	status := "success"
	if !health.DatabaseConnected {
		statusCode = http.StatusServiceUnavailable
		status = "error"
		health.Status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
