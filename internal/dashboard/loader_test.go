// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/podium/internal/metrics"
)

func TestLoader_MemoizesSuccess(t *testing.T) {
	f := &fakeFetcher{records: []map[string]any{romeRecord()}}
	l := NewLoader(f)

	if l.Snapshot() != nil {
		t.Fatal("snapshot should be empty before the first load")
	}

	for i := 0; i < 3; i++ {
		table, err := l.Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(table) != 1 || table[0].Host != "Rome" {
			t.Fatalf("Load() = %+v", table)
		}
	}

	if got := f.calls.Load(); got != 1 {
		t.Errorf("fetches = %d, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.SnapshotRows); got != 1 {
		t.Errorf("dashboard_snapshot_rows = %v, want 1", got)
	}
	if l.Snapshot() == nil || l.Snapshot().FetchedAt.IsZero() {
		t.Error("snapshot should be populated with a fetch time")
	}
}

func TestLoader_FailureNotMemoized(t *testing.T) {
	f := &fakeFetcher{err: &StatusError{Code: 500}}
	l := NewLoader(f)

	table, err := l.Load(context.Background())
	if err == nil || err.Error() != "Failed to fetch data: 500" {
		t.Fatalf("Load() error = %v", err)
	}
	if table == nil || len(table) != 0 {
		t.Errorf("failed load should return an empty, non-nil table, got %#v", table)
	}
	if l.Snapshot() != nil {
		t.Error("failure must not be memoized")
	}

	f.set([]map[string]any{romeRecord()}, nil)
	table, err = l.Load(context.Background())
	if err != nil || len(table) != 1 {
		t.Fatalf("retry Load() = %v, %v", table, err)
	}
	if got := f.calls.Load(); got != 2 {
		t.Errorf("fetches = %d, want 2", got)
	}
}

func TestLoader_ConcurrentFirstLoadPublishesOnce(t *testing.T) {
	f := &fakeFetcher{records: []map[string]any{romeRecord()}}
	l := NewLoader(f)

	const workers = 16
	var wg sync.WaitGroup
	results := make([]Table, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			table, err := l.Load(context.Background())
			if err != nil {
				t.Errorf("Load() error = %v", err)
			}
			results[i] = table
		}(i)
	}
	wg.Wait()

	published := l.Snapshot().Table
	for i, table := range results {
		if len(table) != 1 || &table[0] != &published[0] {
			t.Errorf("worker %d saw a table other than the published snapshot", i)
		}
	}
}

func TestLoader_Warm(t *testing.T) {
	wantErr := &ConnectError{Err: errors.New("connection refused")}
	l := NewLoader(&fakeFetcher{err: wantErr})
	if err := l.Warm(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("Warm() error = %v, want %v", err, wantErr)
	}
}
