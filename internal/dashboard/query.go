// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter defaults and the "no type filter" selection.
const (
	AllTypes       = "All"
	DefaultMinYear = 1960
	DefaultMaxYear = 2030
)

var lowerCaser = cases.Lower(language.Und)

// FilterOptions selects rows by event type and an inclusive year range.
// Zero values fall back to AllTypes, DefaultMinYear and DefaultMaxYear.
type FilterOptions struct {
	EventType string
	MinYear   int
	MaxYear   int
}

func (o FilterOptions) withDefaults() FilterOptions {
	if o.EventType == "" {
		o.EventType = AllTypes
	}
	if o.MinYear == 0 {
		o.MinYear = DefaultMinYear
	}
	if o.MaxYear == 0 {
		o.MaxYear = DefaultMaxYear
	}
	return o
}

// GetAll returns every row.
func GetAll(t Table) Table {
	return t
}

// GetByID returns the first row with the given game id.
func GetByID(t Table, id int64) (Row, bool) {
	for _, row := range t {
		if row.GameID == id {
			return row, true
		}
	}
	return Row{}, false
}

// FilterByTypeAndYear keeps rows whose event type matches eventType
// (case-insensitively, unless it is "" or AllTypes) and whose year lies in
// [minYear, maxYear]. Row order is preserved.
func FilterByTypeAndYear(t Table, eventType string, minYear, maxYear int) Table {
	wantType := ""
	if eventType != "" && eventType != AllTypes {
		wantType = lowerCaser.String(eventType)
	}

	out := make(Table, 0, len(t))
	for _, row := range t {
		if wantType != "" && row.EventType != wantType {
			continue
		}
		if row.Year < minYear || row.Year > maxYear {
			continue
		}
		out = append(out, row)
	}
	return out
}

// Filter applies opts with defaults filled in.
func Filter(t Table, opts FilterOptions) Table {
	opts = opts.withDefaults()
	return FilterByTypeAndYear(t, opts.EventType, opts.MinYear, opts.MaxYear)
}

// YearBounds returns the smallest and largest year in t.
func YearBounds(t Table) (lo, hi int, ok bool) {
	if len(t) == 0 {
		return 0, 0, false
	}
	lo, hi = t[0].Year, t[0].Year
	for _, row := range t[1:] {
		lo = min(lo, row.Year)
		hi = max(hi, row.Year)
	}
	return lo, hi, true
}

// EventTypeOptions lists the selector choices, "All" first.
func EventTypeOptions() []string {
	title := cases.Title(language.English)
	return []string{AllTypes, title.String("summer"), title.String("winter")}
}
