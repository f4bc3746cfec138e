// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"fmt"
	"slices"

	"github.com/tomtom215/podium/internal/dataset"
)

// GameOption is one entry of the edition selector.
type GameOption struct {
	ID    int64
	Label string
}

// GameOptions lists every edition of t, newest first, labelled
// "year - host (event_type)". Editions sharing a year keep table order.
func GameOptions(t Table) []GameOption {
	rows := slices.Clone(t)
	slices.SortStableFunc(rows, func(a, b Row) int {
		return b.Year - a.Year
	})

	opts := make([]GameOption, len(rows))
	for i, row := range rows {
		opts[i] = GameOption{
			ID:    row.GameID,
			Label: fmt.Sprintf("%d - %s (%s)", row.Year, row.Host, row.EventType),
		}
	}
	return opts
}

// Stat is one cell of the participation table.
type Stat struct {
	Metric string
	Value  int64
}

// Detail is the report shown for a single edition.
type Detail struct {
	Row          Row
	Dates        string
	Disabilities []string
	Stats        []Stat
}

// ShowLink reports whether the edition has a usable URL. The null fill
// value does not count.
func (d Detail) ShowLink() bool {
	return d.Row.URL != "" && d.Row.URL != fillText
}

// BuildDetail looks up id in t. An unknown id yields no detail.
func BuildDetail(t Table, id int64) (Detail, bool) {
	row, ok := GetByID(t, id)
	if !ok {
		return Detail{}, false
	}
	return Detail{
		Row:          row,
		Dates:        row.StartDate + " to " + row.EndDate,
		Disabilities: dataset.SplitCategories(row.Disabilities),
		Stats: []Stat{
			{Metric: "Events", Value: row.Events},
			{Metric: "Sports", Value: row.Sports},
			{Metric: "Countries", Value: row.CountriesCount},
		},
	}, true
}
