// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/podium/internal/metrics"
	"github.com/tomtom215/podium/internal/models"
)

// disabilityAggregate returns the per-dialect subquery that folds
// edition_disabilities into one comma-separated string per game_id.
func (db *DB) disabilityAggregate() string {
	if db.driver == DriverSQLite {
		return `SELECT game_id, group_concat(category, ',') AS disabilities
			FROM (SELECT game_id, category FROM edition_disabilities ORDER BY game_id, position)
			GROUP BY game_id`
	}
	return `SELECT game_id, string_agg(category, ',' ORDER BY position) AS disabilities
		FROM edition_disabilities
		GROUP BY game_id`
}

func (db *DB) flattenQuery() string {
	return `SELECT
			e.game_id, e.year, e.start_date, e.end_date, e.event_type,
			l.host, l.country,
			COALESCE(p.participants_total, 0),
			COALESCE(p.participants_m, 0),
			COALESCE(p.participants_f, 0),
			COALESCE(p.countries_count, 0),
			COALESCE(g.sports, 0),
			COALESCE(g.events, 0),
			d.disabilities, h.highlights, e.url
		FROM editions e
		LEFT JOIN locations l ON l.game_id = e.game_id
		LEFT JOIN participation p ON p.game_id = e.game_id
		LEFT JOIN programme g ON g.game_id = e.game_id
		LEFT JOIN (` + db.disabilityAggregate() + `) d ON d.game_id = e.game_id
		LEFT JOIN highlights h ON h.game_id = e.game_id
		ORDER BY e.game_id`
}

// GetAllRecords returns every edition flattened with its sub-records, in
// game_id order. No filtering or pagination is applied. Any failure to read
// the store is reported as ErrStoreUnavailable.
func (db *DB) GetAllRecords(ctx context.Context) ([]models.Edition, error) {
	start := time.Now()
	editions, err := db.getAllRecords(ctx)
	metrics.RecordDBQuery("SELECT", "editions", time.Since(start), err)
	if err != nil {
		return nil, storeUnavailable("get all records", err)
	}
	metrics.RecordsServed.Set(float64(len(editions)))
	return editions, nil
}

func (db *DB) getAllRecords(ctx context.Context) ([]models.Edition, error) {
	if db.conn == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	rows, err := db.conn.QueryContext(ctx, db.flattenQuery())
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, nil, "rows")

	editions := make([]models.Edition, 0, 64)
	for rows.Next() {
		var (
			e                             models.Edition
			start, end, host, country     sql.NullString
			disabilities, highlights, url sql.NullString
		)
		if err := rows.Scan(
			&e.GameID, &e.Year, &start, &end, &e.EventType,
			&host, &country,
			&e.ParticipantsTotal, &e.ParticipantsM, &e.ParticipantsF, &e.CountriesCount,
			&e.Sports, &e.Events,
			&disabilities, &highlights, &url,
		); err != nil {
			return nil, fmt.Errorf("scan edition: %w", err)
		}
		e.StartDate = nullable(start)
		e.EndDate = nullable(end)
		e.Host = nullable(host)
		e.Country = nullable(country)
		e.Disabilities = nullable(disabilities)
		e.Highlights = nullable(highlights)
		e.URL = nullable(url)
		editions = append(editions, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return editions, nil
}

// CountEditions returns the number of rows in editions.
func (db *DB) CountEditions(ctx context.Context) (int, error) {
	start := time.Now()
	var n int
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM editions").Scan(&n)
	metrics.RecordDBQuery("COUNT", "editions", time.Since(start), err)
	if err != nil {
		return 0, storeUnavailable("count editions", err)
	}
	return n, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
