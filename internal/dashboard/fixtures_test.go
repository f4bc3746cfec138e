// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"context"
	"sync"
	"sync/atomic"
)

// chartFixture is a two-edition table used by the golden chart tests.
func chartFixture() Table {
	return Table{
		{
			GameID: 1, Year: 1960, EventType: "summer", Host: "Rome", Country: "Italy",
			ParticipantsTotal: 209, CountriesCount: 23, Sports: 8, Events: 57,
			StartDate: "1960-09-18", EndDate: "1960-09-25",
			Disabilities: "Spinal injury", Highlights: "0", URL: "0",
		},
		{
			GameID: 2, Year: 1984, EventType: "winter", Host: "Innsbruck", Country: "Austria",
			ParticipantsTotal: 419, ParticipantsM: 325, ParticipantsF: 94,
			CountriesCount: 21, Sports: 3, Events: 107,
			StartDate: "1984-01-14", EndDate: "1984-01-20",
			Disabilities: "Spinal injury,Amputee,Vision Impairment",
			Highlights:   "Alpine and Nordic skiing",
			URL:          "https://www.paralympic.org/innsbruck-1984",
		},
	}
}

// fakeFetcher counts fetches and returns records or err.
type fakeFetcher struct {
	mu      sync.Mutex
	calls   atomic.Int32
	records []map[string]any
	err     error
}

func (f *fakeFetcher) FetchRecords(context.Context) ([]map[string]any, error) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeFetcher) set(records []map[string]any, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records, f.err = records, err
}

// romeRecord is the decoded form of a single 1960 edition.
func romeRecord() map[string]any {
	return map[string]any{
		"game_id":            1,
		"year":               1960,
		"event_type":         "summer",
		"host":               "Rome",
		"country":            "Italy",
		"participants_total": 400,
		"countries_count":    23,
	}
}
