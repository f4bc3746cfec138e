// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/podium/internal/validation"
)

// EmptyWarning is shown instead of the dashboard when no records are loaded.
const EmptyWarning = "Please ensure the Backend Server is running"

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// FilterForm holds the sidebar selections parsed from the query string.
type FilterForm struct {
	EventType string `validate:"omitempty,eventtype"`
	MinYear   int    `validate:"gte=1000,lte=9999"`
	MaxYear   int    `validate:"gte=1000,lte=9999,gtefield=MinYear"`
	Game      int64  `validate:"gte=0"`
}

// defaultForm is the initial selection: every type, DefaultMinYear up to the
// newest edition. The lower bound never exceeds maxYear.
func defaultForm(maxYear int) FilterForm {
	return FilterForm{EventType: AllTypes, MinYear: min(DefaultMinYear, maxYear), MaxYear: maxYear}
}

// ParseFilterForm reads type, min_year, max_year and game from q. On any
// invalid value it returns the defaults and a message for the user.
func ParseFilterForm(q url.Values, maxYear int) (FilterForm, string) {
	form := defaultForm(maxYear)

	if v := strings.TrimSpace(q.Get("type")); v != "" {
		form.EventType = v
		if strings.EqualFold(v, AllTypes) {
			form.EventType = AllTypes
		}
	}
	for _, p := range []struct {
		key string
		dst *int
	}{
		{"min_year", &form.MinYear},
		{"max_year", &form.MaxYear},
	} {
		v := strings.TrimSpace(q.Get(p.key))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return defaultForm(maxYear), fmt.Sprintf("%s must be a whole number", p.key)
		}
		*p.dst = n
	}
	if v := strings.TrimSpace(q.Get("game")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return defaultForm(maxYear), "game must be a whole number"
		}
		form.Game = n
	}

	if verr := validation.ValidateStruct(&form); verr != nil {
		return defaultForm(maxYear), verr.ToAPIError().Message
	}
	return form, ""
}

// Page is everything the dashboard template renders.
type Page struct {
	Title   string
	Notices []string
	Warning string
	Invalid string

	Form        FilterForm
	TypeOptions []string
	SliderMin   int
	SliderMax   int

	Metrics    Metrics
	HasMetrics bool

	LineSpec   template.JS
	BubbleSpec template.JS
	MapSpec    template.JS
	GenderSpec template.JS
	MapNote    string

	Games        []GameOption
	SelectedGame int64
	Detail       *Detail
}

// Empty reports whether the page short-circuits to the backend warning.
func (p *Page) Empty() bool {
	return p.Warning != ""
}

// SelectedType reports whether opt is the current event type selection.
func (p *Page) SelectedType(opt string) bool {
	return strings.EqualFold(opt, p.Form.EventType)
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	return pageTemplate.Execute(w, p)
}

// setCharts marshals chart specs onto the page. The specs come from our own
// encoder, so they are safe to place in a script element verbatim.
func (p *Page) setCharts(c Charts) {
	p.LineSpec = template.JS(c.Line)     //nolint:gosec // JSON produced by BuildCharts
	p.BubbleSpec = template.JS(c.Bubble) //nolint:gosec // JSON produced by BuildCharts
	p.GenderSpec = template.JS(c.Gender) //nolint:gosec // JSON produced by BuildCharts
	if c.Map != nil {
		p.MapSpec = template.JS(c.Map) //nolint:gosec // JSON produced by BuildCharts
	}
	p.MapNote = c.MapNote
}
