// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/podium/internal/logging"
	"github.com/tomtom215/podium/internal/metrics"
)

// Fetcher retrieves the raw records from the backend.
type Fetcher interface {
	FetchRecords(ctx context.Context) ([]map[string]any, error)
}

// Snapshot is the memoized result of the first successful fetch.
type Snapshot struct {
	Table     Table
	FetchedAt time.Time
}

// Loader memoizes the backend records for the life of the process.
//
// The slot is filled lazily on the first successful Load. Failed loads leave
// it empty so the next render tries again. Concurrent first loads may all
// fetch, but only the first result to land is published and every caller
// after that sees the same snapshot.
type Loader struct {
	fetcher Fetcher
	slot    atomic.Pointer[Snapshot]
}

// NewLoader creates a loader backed by fetcher.
func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load returns the memoized table, fetching it on first use. On failure it
// returns an empty table together with the error whose message is the
// notice shown to the user.
func (l *Loader) Load(ctx context.Context) (Table, error) {
	if snap := l.slot.Load(); snap != nil {
		return snap.Table, nil
	}

	records, err := l.fetcher.FetchRecords(ctx)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Backend fetch failed")
		return Table{}, err
	}

	snap := &Snapshot{Table: Normalize(records), FetchedAt: time.Now()}
	if !l.slot.CompareAndSwap(nil, snap) {
		return l.slot.Load().Table, nil
	}

	metrics.SnapshotRows.Set(float64(len(snap.Table)))
	logging.Ctx(ctx).Info().Int("rows", len(snap.Table)).Msg("Backend records loaded")
	return snap.Table, nil
}

// Snapshot returns the memoized snapshot, or nil before the first
// successful load.
func (l *Loader) Snapshot() *Snapshot {
	return l.slot.Load()
}

// Warm loads the snapshot ahead of the first page render.
func (l *Loader) Warm(ctx context.Context) error {
	_, err := l.Load(ctx)
	return err
}
