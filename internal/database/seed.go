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

	"github.com/tomtom215/podium/internal/dataset"
	"github.com/tomtom215/podium/internal/logging"
	"github.com/tomtom215/podium/internal/metrics"
	"github.com/tomtom215/podium/internal/models"
)

// SeedIfEmpty imports editions only when the store holds none. It reports
// whether anything was written.
func (db *DB) SeedIfEmpty(ctx context.Context, editions []models.Edition) (bool, error) {
	n, err := db.CountEditions(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		logging.Ctx(ctx).Debug().Int("editions", n).Msg("Record store already populated, skipping seed")
		return false, nil
	}
	if err := db.ImportEditions(ctx, editions); err != nil {
		return false, err
	}
	logging.Ctx(ctx).Info().Int("editions", len(editions)).Msg("Seeded record store")
	return true, nil
}

// ImportEditions upserts editions and their sub-records in one transaction.
// An existing edition with the same game_id is replaced, including its
// disability list.
func (db *DB) ImportEditions(ctx context.Context, editions []models.Edition) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("INSERT", "editions", time.Since(start), err)
	}()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Warn().Err(rbErr).Msg("Failed to roll back import")
			}
		}
	}()

	for i := range editions {
		if err = upsertEdition(ctx, tx, &editions[i]); err != nil {
			return fmt.Errorf("import game_id %d: %w", editions[i].GameID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func upsertEdition(ctx context.Context, tx *sql.Tx, e *models.Edition) error {
	statements := []struct {
		query string
		args  []any
	}{
		{
			`INSERT OR REPLACE INTO editions (game_id, event_type, year, start_date, end_date, url) VALUES (?, ?, ?, ?, ?, ?)`,
			[]any{e.GameID, e.EventType, e.Year, nullString(e.StartDate), nullString(e.EndDate), nullString(e.URL)},
		},
		{
			`INSERT OR REPLACE INTO locations (game_id, host, country) VALUES (?, ?, ?)`,
			[]any{e.GameID, nullString(e.Host), nullString(e.Country)},
		},
		{
			`INSERT OR REPLACE INTO participation (game_id, participants_total, participants_m, participants_f, countries_count) VALUES (?, ?, ?, ?, ?)`,
			[]any{e.GameID, e.ParticipantsTotal, e.ParticipantsM, e.ParticipantsF, e.CountriesCount},
		},
		{
			`INSERT OR REPLACE INTO programme (game_id, sports, events) VALUES (?, ?, ?)`,
			[]any{e.GameID, e.Sports, e.Events},
		},
		{
			`INSERT OR REPLACE INTO highlights (game_id, highlights) VALUES (?, ?)`,
			[]any{e.GameID, nullString(e.Highlights)},
		},
	}
	for _, s := range statements {
		if _, err := tx.ExecContext(ctx, s.query, s.args...); err != nil {
			return err
		}
	}

	categories := dataset.SplitCategories(models.StringValue(e.Disabilities))
	for pos, category := range categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO edition_disabilities (game_id, position, category) VALUES (?, ?, ?)`,
			e.GameID, pos, category); err != nil {
			return err
		}
	}
	_, err := tx.ExecContext(ctx,
		`DELETE FROM edition_disabilities WHERE game_id = ? AND position >= ?`,
		e.GameID, len(categories))
	return err
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
