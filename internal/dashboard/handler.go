// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/tomtom215/podium/internal/logging"
	"github.com/tomtom215/podium/internal/metrics"
)

// Handler renders the dashboard page from the loader's snapshot.
type Handler struct {
	loader *Loader
	title  string
}

// NewHandler creates a dashboard handler.
func NewHandler(loader *Loader, title string) *Handler {
	if title == "" {
		title = "Paralympics Analytics Dashboard"
	}
	return &Handler{loader: loader, title: title}
}

// BuildPage assembles the page for query q. Every render starts from the
// memoized table; nothing is cached between renders.
func (h *Handler) BuildPage(ctx context.Context, q url.Values) (*Page, error) {
	page := &Page{Title: h.title}

	table, err := h.loader.Load(ctx)
	if err != nil {
		page.Notices = append(page.Notices, err.Error())
	}
	if len(table) == 0 {
		page.Warning = EmptyWarning
		metrics.RecordRender(true)
		return page, nil
	}

	lo, hi, _ := YearBounds(table)
	page.SliderMin, page.SliderMax = lo, hi
	page.TypeOptions = EventTypeOptions()
	page.Form, page.Invalid = ParseFilterForm(q, hi)

	filtered := FilterByTypeAndYear(table, page.Form.EventType, page.Form.MinYear, page.Form.MaxYear)
	page.Metrics, page.HasMetrics = ComputeMetrics(filtered)

	charts, err := BuildCharts(filtered)
	if err != nil {
		return nil, err
	}
	page.setCharts(charts)

	// The selector always covers every edition, not just the filtered ones.
	page.Games = GameOptions(table)
	page.SelectedGame = page.Form.Game
	if page.SelectedGame == 0 && len(page.Games) > 0 {
		page.SelectedGame = page.Games[0].ID
	}
	if detail, ok := BuildDetail(table, page.SelectedGame); ok {
		page.Detail = &detail
	}

	metrics.RecordRender(false)
	return page, nil
}

// Dashboard serves GET /.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	page, err := h.BuildPage(r.Context(), r.URL.Query())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to build dashboard page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render dashboard page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write dashboard page")
	}
}

type probeStatus struct {
	Status string `json:"status"`
	Rows   int    `json:"rows,omitempty"`
}

// HealthLive reports that the dashboard process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	writeProbe(w, r, http.StatusOK, probeStatus{Status: "alive"})
}

// HealthReady reports whether the backend snapshot has been loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	snap := h.loader.Snapshot()
	if snap == nil {
		writeProbe(w, r, http.StatusServiceUnavailable, probeStatus{Status: "not_ready"})
		return
	}
	writeProbe(w, r, http.StatusOK, probeStatus{Status: "ready", Rows: len(snap.Table)})
}

func writeProbe(w http.ResponseWriter, r *http.Request, status int, body probeStatus) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write probe response")
	}
}
