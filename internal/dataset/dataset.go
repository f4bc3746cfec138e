// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

// Package dataset reads Paralympic Games editions from CSV.
//
// The bundled paralympics.csv is embedded in the binary and is what
// SEED_DATA loads into an empty record store. The same parser backs
// `podiumctl import`, so operators can load a corrected or extended file
// with the same column layout:
//
//	type,year,country,host,start,end,disabilities_included,countries,
//	events,sports,participants_m,participants_f,participants,highlights,URL
//
// Column names are matched case-insensitively and may appear in any order.
// Only type and year are required.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/tomtom215/podium/internal/models"
)

//go:embed paralympics.csv
var bundled []byte

// ErrMalformed is wrapped by every row-level parse failure.
var ErrMalformed = errors.New("malformed edition record")

// Column headers, lowercased.
const (
	colID           = "game_id"
	colType         = "type"
	colYear         = "year"
	colCountry      = "country"
	colHost         = "host"
	colStart        = "start"
	colEnd          = "end"
	colDisabilities = "disabilities_included"
	colCountries    = "countries"
	colEvents       = "events"
	colSports       = "sports"
	colMale         = "participants_m"
	colFemale       = "participants_f"
	colTotal        = "participants"
	colHighlights   = "highlights"
	colURL          = "url"
)

// dateLayouts are tried in order; the first one that parses wins.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "2/1/2006"}

// Bundled parses the embedded edition list.
func Bundled() ([]models.Edition, error) {
	return Parse(bytes.NewReader(bundled))
}

// ParseFile parses the CSV file at path.
func ParseFile(path string) ([]models.Edition, error) {
	f, err := os.Open(path) //nolint:gosec // operator-supplied import path
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse reads editions from r. Rows without a game_id column are numbered
// from 1 in file order.
func Parse(r io.Reader) ([]models.Edition, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrMalformed)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, required := range []string{colType, colYear} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: missing %q column", ErrMalformed, required)
		}
	}

	var editions []models.Edition
	seen := make(map[int64]struct{})
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}

		row := rowReader{cols: cols, record: record}
		e, err := row.edition(int64(len(editions) + 1))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, dup := seen[e.GameID]; dup {
			return nil, fmt.Errorf("line %d: %w: duplicate game_id %d", line, ErrMalformed, e.GameID)
		}
		seen[e.GameID] = struct{}{}
		editions = append(editions, e)
	}
	return editions, nil
}

type rowReader struct {
	cols   map[string]int
	record []string
}

func (r rowReader) text(col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	return norm.NFC.String(strings.TrimSpace(r.record[i]))
}

func (r rowReader) count(col string) (int64, error) {
	s := r.text(col)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s %q is not a non-negative integer", ErrMalformed, col, s)
	}
	return n, nil
}

func (r rowReader) date(col string) (*string, error) {
	s := r.text(col)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.StringPtr(t.Format("2006-01-02")), nil
		}
	}
	return nil, fmt.Errorf("%w: %s %q is not a date", ErrMalformed, col, s)
}

func (r rowReader) edition(defaultID int64) (models.Edition, error) {
	e := models.Edition{GameID: defaultID}

	if s := r.text(colID); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			return e, fmt.Errorf("%w: game_id %q", ErrMalformed, s)
		}
		e.GameID = id
	}

	e.EventType = strings.ToLower(r.text(colType))
	if e.EventType != models.EventTypeSummer && e.EventType != models.EventTypeWinter {
		return e, fmt.Errorf("%w: type %q is neither summer nor winter", ErrMalformed, r.text(colType))
	}

	year, err := strconv.Atoi(r.text(colYear))
	if err != nil || year < 1000 || year > 9999 {
		return e, fmt.Errorf("%w: year %q is not a 4-digit year", ErrMalformed, r.text(colYear))
	}
	e.Year = year

	if e.StartDate, err = r.date(colStart); err != nil {
		return e, err
	}
	if e.EndDate, err = r.date(colEnd); err != nil {
		return e, err
	}

	e.Host = models.StringPtr(r.text(colHost))
	e.Country = models.StringPtr(r.text(colCountry))
	e.Highlights = models.StringPtr(r.text(colHighlights))
	e.URL = models.StringPtr(r.text(colURL))
	e.Disabilities = models.StringPtr(strings.Join(SplitCategories(r.text(colDisabilities)), ","))

	counts := []struct {
		col string
		dst *int64
	}{
		{colCountries, &e.CountriesCount},
		{colEvents, &e.Events},
		{colSports, &e.Sports},
		{colMale, &e.ParticipantsM},
		{colFemale, &e.ParticipantsF},
		{colTotal, &e.ParticipantsTotal},
	}
	for _, c := range counts {
		if *c.dst, err = r.count(c.col); err != nil {
			return e, err
		}
	}
	if e.ParticipantsTotal == 0 {
		e.ParticipantsTotal = e.ParticipantsM + e.ParticipantsF
	}
	return e, nil
}

// SplitCategories splits a comma-separated disability list, trimming
// whitespace and dropping empty entries.
func SplitCategories(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
