// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"reflect"
	"testing"
)

func TestGameOptions_NewestFirstStable(t *testing.T) {
	table := Table{
		{GameID: 1, Year: 1960, Host: "Rome", EventType: "summer"},
		{GameID: 2, Year: 1984, Host: "Stoke Mandeville, New York", EventType: "summer"},
		{GameID: 3, Year: 1984, Host: "Innsbruck", EventType: "winter"},
		{GameID: 4, Year: 2024, Host: "Paris", EventType: "summer"},
	}
	want := []GameOption{
		{ID: 4, Label: "2024 - Paris (summer)"},
		{ID: 2, Label: "1984 - Stoke Mandeville, New York (summer)"},
		{ID: 3, Label: "1984 - Innsbruck (winter)"},
		{ID: 1, Label: "1960 - Rome (summer)"},
	}
	if got := GameOptions(table); !reflect.DeepEqual(got, want) {
		t.Errorf("GameOptions() = %+v\nwant %+v", got, want)
	}
	if table[0].GameID != 1 {
		t.Error("GameOptions must not reorder its input")
	}
}

func TestBuildDetail(t *testing.T) {
	d, ok := BuildDetail(chartFixture(), 2)
	if !ok {
		t.Fatal("BuildDetail(2) not found")
	}
	if d.Dates != "1984-01-14 to 1984-01-20" {
		t.Errorf("Dates = %q", d.Dates)
	}
	wantTags := []string{"Spinal injury", "Amputee", "Vision Impairment"}
	if !reflect.DeepEqual(d.Disabilities, wantTags) {
		t.Errorf("Disabilities = %v, want %v", d.Disabilities, wantTags)
	}
	wantStats := []Stat{{"Events", 107}, {"Sports", 3}, {"Countries", 21}}
	if !reflect.DeepEqual(d.Stats, wantStats) {
		t.Errorf("Stats = %v, want %v", d.Stats, wantStats)
	}
	if !d.ShowLink() {
		t.Error("edition with a URL should show the link")
	}
}

func TestBuildDetail_FilledURLHidesLink(t *testing.T) {
	d, ok := BuildDetail(chartFixture(), 1)
	if !ok {
		t.Fatal("BuildDetail(1) not found")
	}
	if d.ShowLink() {
		t.Error("URL holding the fill value must not be linked")
	}
	if d.Row.Highlights != "0" {
		t.Errorf("Highlights = %q, filled text is shown as-is", d.Row.Highlights)
	}

	d.Row.URL = ""
	if d.ShowLink() {
		t.Error("empty URL must not be linked")
	}
}

func TestBuildDetail_UnknownID(t *testing.T) {
	if _, ok := BuildDetail(chartFixture(), 404); ok {
		t.Error("unknown id should yield no detail")
	}
}
