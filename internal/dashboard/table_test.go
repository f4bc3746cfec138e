// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
)

func decodeRecords(t *testing.T, body string) []map[string]any {
	t.Helper()
	var records []map[string]any
	dec := json.NewDecoder(bytes.NewBufferString(body))
	dec.UseNumber()
	if err := dec.Decode(&records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return records
}

func TestNormalize_FillsNullsWithZero(t *testing.T) {
	records := decodeRecords(t, `[{
		"game_id": 7, "year": 2024, "event_type": "summer",
		"start_date": null, "end_date": null, "host": null, "country": null,
		"participants_total": null, "participants_m": null, "participants_f": null,
		"countries_count": null, "sports": null, "events": null,
		"disabilities": null, "highlights": null, "url": null
	}]`)

	table := Normalize(records)
	if len(table) != 1 {
		t.Fatalf("got %d rows", len(table))
	}
	row := table[0]

	// Text columns receive the string form of the fill value.
	for name, got := range map[string]string{
		"start_date":   row.StartDate,
		"end_date":     row.EndDate,
		"host":         row.Host,
		"country":      row.Country,
		"disabilities": row.Disabilities,
		"highlights":   row.Highlights,
		"url":          row.URL,
	} {
		if got != "0" {
			t.Errorf("%s = %q, want \"0\"", name, got)
		}
	}
	for name, got := range map[string]int64{
		"participants_total": row.ParticipantsTotal,
		"participants_m":     row.ParticipantsM,
		"participants_f":     row.ParticipantsF,
		"countries_count":    row.CountriesCount,
		"sports":             row.Sports,
		"events":             row.Events,
	} {
		if got != 0 {
			t.Errorf("%s = %d, want 0", name, got)
		}
	}
	if row.GameID != 7 || row.Year != 2024 || row.EventType != "summer" {
		t.Errorf("identity fields = %d/%d/%q", row.GameID, row.Year, row.EventType)
	}
}

func TestNormalize_AbsentColumnsAndExtras(t *testing.T) {
	records := decodeRecords(t, `[
		{"game_id": 1, "year": 1960, "host": "Rome", "medals": null, "mascot": "none"},
		{"game_id": 2, "year": 1964.0, "participants_total": "375", "sports": 9.7}
	]`)
	table := Normalize(records)

	if table[0].Country != "0" || table[0].Events != 0 {
		t.Errorf("absent columns should be filled: %+v", table[0])
	}
	if table[0].Extra["mascot"] != "none" {
		t.Errorf("Extra[mascot] = %#v", table[0].Extra["mascot"])
	}
	if v, ok := table[0].Extra["medals"]; !ok || v != FillValue {
		t.Errorf("Extra[medals] = %#v, want fill value", v)
	}
	if table[1].Extra != nil {
		t.Errorf("row without unknown columns should have nil Extra, got %v", table[1].Extra)
	}

	if table[1].Year != 1964 {
		t.Errorf("Year = %d, want 1964", table[1].Year)
	}
	if table[1].ParticipantsTotal != 375 {
		t.Errorf("numeric string = %d, want 375", table[1].ParticipantsTotal)
	}
	if table[1].Sports != 9 {
		t.Errorf("fractional count = %d, want truncated 9", table[1].Sports)
	}
}

func TestNormalize_Empty(t *testing.T) {
	if table := Normalize(nil); table == nil || len(table) != 0 {
		t.Errorf("Normalize(nil) = %#v, want empty table", table)
	}
}

func TestTextValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "0"},
		{"Rome", "Rome"},
		{json.Number("12"), "12"},
		{1.5, "1.5"},
		{true, "true"},
	}
	for _, tt := range tests {
		if got := textValue(tt.in); got != tt.want {
			t.Errorf("textValue(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIntValue(t *testing.T) {
	tests := []struct {
		in   any
		want int64
	}{
		{nil, 0},
		{json.Number("4403"), 4403},
		{json.Number("12.9"), 12},
		{"  209 ", 209},
		{"n/a", 0},
		{true, 0},
		{float64(3), 3},
	}
	for _, tt := range tests {
		if got := intValue(tt.in); got != tt.want {
			t.Errorf("intValue(%#v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
