// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

/*
database_schema.go - Record Store Schema

One row per edition in editions; everything else hangs off game_id:

  - locations: host city (possibly a comma-separated co-host list) and country
  - participation: athlete and country counts
  - programme: number of sports and events
  - edition_disabilities: one row per disability category, ordered by position
  - highlights: free-text summary

Sub-records are optional. The flattening query in editions.go LEFT JOINs them
so an edition with no sub-records still appears, with null text and zero counts.

The same DDL runs on DuckDB and SQLite.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the record store tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range getTableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func getTableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS editions (
			game_id BIGINT PRIMARY KEY,
			event_type TEXT NOT NULL,
			year INTEGER NOT NULL,
			start_date TEXT,
			end_date TEXT,
			url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS locations (
			game_id BIGINT PRIMARY KEY,
			host TEXT,
			country TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS participation (
			game_id BIGINT PRIMARY KEY,
			participants_total BIGINT,
			participants_m BIGINT,
			participants_f BIGINT,
			countries_count BIGINT
		)`,
		`CREATE TABLE IF NOT EXISTS programme (
			game_id BIGINT PRIMARY KEY,
			sports BIGINT,
			events BIGINT
		)`,
		`CREATE TABLE IF NOT EXISTS edition_disabilities (
			game_id BIGINT NOT NULL,
			position INTEGER NOT NULL,
			category TEXT NOT NULL,
			PRIMARY KEY (game_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS highlights (
			game_id BIGINT PRIMARY KEY,
			highlights TEXT
		)`,
	}
}
