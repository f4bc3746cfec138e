// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

// Package models defines the wire types shared by the record store, the HTTP
// API and the dashboard client.
package models

// Event types, stored lowercase.
const (
	EventTypeSummer = "summer"
	EventTypeWinter = "winter"
)

// Edition is one flattened Paralympic Games edition as served by
// GET /api/paralympics/all. Text columns sourced from optional sub-records
// are pointers so a missing sub-record serializes as null.
type Edition struct {
	GameID            int64   `json:"game_id"`
	Year              int     `json:"year"`
	StartDate         *string `json:"start_date"`
	EndDate           *string `json:"end_date"`
	EventType         string  `json:"event_type"`
	Host              *string `json:"host"`
	Country           *string `json:"country"`
	ParticipantsTotal int64   `json:"participants_total"`
	ParticipantsM     int64   `json:"participants_m"`
	ParticipantsF     int64   `json:"participants_f"`
	CountriesCount    int64   `json:"countries_count"`
	Sports            int64   `json:"sports"`
	Events            int64   `json:"events"`
	Disabilities      *string `json:"disabilities"`
	Highlights        *string `json:"highlights"`
	URL               *string `json:"url"`
}

// EditionFields lists the JSON field names of Edition in declaration order.
var EditionFields = []string{
	"game_id", "year", "start_date", "end_date", "event_type", "host", "country",
	"participants_total", "participants_m", "participants_f", "countries_count",
	"sports", "events", "disabilities", "highlights", "url",
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
