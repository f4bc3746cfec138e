// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/podium/internal/models"
)

// FillValue replaces every null after a fetch. Text columns receive its
// string form, so a missing host reads "0".
const FillValue = 0

var fillText = strconv.Itoa(FillValue)

// Row is one edition as held by the dashboard after null filling.
type Row struct {
	GameID            int64
	Year              int
	StartDate         string
	EndDate           string
	EventType         string
	Host              string
	Country           string
	ParticipantsTotal int64
	ParticipantsM     int64
	ParticipantsF     int64
	CountriesCount    int64
	Sports            int64
	Events            int64
	Disabilities      string
	Highlights        string
	URL               string

	// Extra carries columns the dashboard does not know about.
	Extra map[string]any
}

// Table is an immutable snapshot of rows in backend order. Functions that
// select from a Table return a new slice and never modify their input.
type Table []Row

// Normalize converts decoded records into a Table, replacing every null or
// absent value with FillValue.
func Normalize(records []map[string]any) Table {
	table := make(Table, 0, len(records))
	for _, rec := range records {
		table = append(table, normalizeRecord(rec))
	}
	return table
}

func normalizeRecord(rec map[string]any) Row {
	row := Row{
		GameID:            intValue(rec["game_id"]),
		Year:              int(intValue(rec["year"])),
		StartDate:         textValue(rec["start_date"]),
		EndDate:           textValue(rec["end_date"]),
		EventType:         textValue(rec["event_type"]),
		Host:              textValue(rec["host"]),
		Country:           textValue(rec["country"]),
		ParticipantsTotal: intValue(rec["participants_total"]),
		ParticipantsM:     intValue(rec["participants_m"]),
		ParticipantsF:     intValue(rec["participants_f"]),
		CountriesCount:    intValue(rec["countries_count"]),
		Sports:            intValue(rec["sports"]),
		Events:            intValue(rec["events"]),
		Disabilities:      textValue(rec["disabilities"]),
		Highlights:        textValue(rec["highlights"]),
		URL:               textValue(rec["url"]),
	}

	for key, v := range rec {
		if slices.Contains(models.EditionFields, key) {
			continue
		}
		if row.Extra == nil {
			row.Extra = make(map[string]any)
		}
		if v == nil {
			v = FillValue
		}
		row.Extra[key] = v
	}
	return row
}

func textValue(v any) string {
	switch val := v.(type) {
	case nil:
		return fillText
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// intValue reads a count or year. Values that are not numbers become
// FillValue; fractional numbers are truncated.
func intValue(v any) int64 {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return truncate(f)
		}
	case float64:
		return truncate(val)
	case int:
		return int64(val)
	case int64:
		return val
	case string:
		s := strings.TrimSpace(val)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return truncate(f)
		}
	}
	return FillValue
}

func truncate(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return FillValue
	}
	return int64(f)
}
