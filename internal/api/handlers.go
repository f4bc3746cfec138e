// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package api

import (
	"context"
	"time"

	"github.com/tomtom215/podium/internal/models"
)

// Version is reported by the readiness probe. Set at build time with
// -ldflags "-X github.com/tomtom215/podium/internal/api.Version=...".
var Version = "dev"

// RecordStore is the read side of the record store used by the handlers.
// *database.DB satisfies it.
type RecordStore interface {
	GetAllRecords(ctx context.Context) ([]models.Edition, error)
	Ping(ctx context.Context) error
	Driver() string
}

// Handler contains dependencies for API handlers
//
//   - handlers_editions.go: liveness message and the records endpoint
//   - handlers_health.go: probes
//   - handlers_helpers.go: response writers
type Handler struct {
	store     RecordStore
	startTime time.Time
}

// NewHandler creates a new API handler backed by store.
func NewHandler(store RecordStore) *Handler {
	return &Handler{
		store:     store,
		startTime: time.Now(),
	}
}
