// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// Metrics are the headline figures for a filtered table.
type Metrics struct {
	TotalGames     int
	TotalAthletes  int64
	TotalCountries int64
	LatestHost     string
}

// ComputeMetrics summarises t. It returns false for an empty table, which
// has no latest host.
func ComputeMetrics(t Table) (Metrics, bool) {
	if len(t) == 0 {
		return Metrics{}, false
	}

	m := Metrics{TotalGames: len(t)}
	latest := t[0]
	for _, row := range t {
		m.TotalAthletes += row.ParticipantsTotal
		m.TotalCountries += row.CountriesCount
		// strictly greater keeps the earliest row on ties, as a stable
		// descending sort would
		if row.Year > latest.Year {
			latest = row
		}
	}
	m.LatestHost = latest.Host
	return m, true
}

// AthletesDisplay formats TotalAthletes with thousands separators.
func (m Metrics) AthletesDisplay() string {
	return numberPrinter.Sprintf("%d", m.TotalAthletes)
}
