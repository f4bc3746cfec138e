// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package api

import (
	"net/http"

	"github.com/tomtom215/podium/internal/logging"
	"github.com/tomtom215/podium/internal/models"
)

// LivenessText is the fixed message returned by GET /.
const LivenessText = "Backend API is running."

// Root confirms the process is reachable.
//
// @Summary Liveness message
// @Description Returns a fixed confirmation payload. Does not touch the record store.
// @Tags Core
// @Produce json
// @Success 200 {object} models.LivenessMessage
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondRaw(w, r, http.StatusOK, models.LivenessMessage{Message: LivenessText})
}

// AllEditions returns every edition flattened with its location,
// participation, programme, disability and highlight sub-records.
//
// @Summary Fetch all editions
// @Description Returns a bare JSON array of flattened editions in game_id order. No filtering or pagination. Honours If-None-Match.
// @Tags Editions
// @Produce json
// @Success 200 {array} models.Edition
// @Success 304 "Not modified"
// @Failure 500 {object} models.APIResponse "Record store unavailable"
// @Router /api/paralympics/all [get]
func (h *Handler) AllEditions(w http.ResponseWriter, r *http.Request) {
	editions, err := h.store.GetAllRecords(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to read editions")
		respondError(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Record store unavailable", nil)
		return
	}
	if editions == nil {
		editions = []models.Edition{}
	}
	respondRaw(w, r, http.StatusOK, editions)
}
