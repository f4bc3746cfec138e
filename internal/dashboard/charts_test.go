// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sebdah/goldie/v2"
)

func marshalSpec(t *testing.T, spec ChartSpec) []byte {
	t.Helper()
	out, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		t.Fatalf("marshal spec: %v", err)
	}
	return out
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestLineChart_Golden(t *testing.T) {
	newGoldie(t).Assert(t, "line_chart", marshalSpec(t, LineChart(chartFixture())))
}

func TestGenderChart_Golden(t *testing.T) {
	newGoldie(t).Assert(t, "gender_chart", marshalSpec(t, GenderChart(chartFixture())))
}

func TestMapChart_Golden(t *testing.T) {
	spec, ok := MapChart(chartFixture())
	if !ok {
		t.Fatal("MapChart() reported no locations")
	}
	newGoldie(t).Assert(t, "map_chart", marshalSpec(t, spec))
}

func TestMapChart_SkipsUnknownHosts(t *testing.T) {
	withUnknown := append(chartFixture(), Row{GameID: 3, Year: 2030, EventType: "summer", Host: "Atlantis"})

	want, _ := MapChart(chartFixture())
	got, ok := MapChart(withUnknown)
	if !ok {
		t.Fatal("MapChart() reported no locations")
	}
	if !bytes.Equal(marshalSpec(t, got), marshalSpec(t, want)) {
		t.Error("a host without coordinates should be left off the map")
	}
}

func TestMapChart_NoLocations(t *testing.T) {
	if _, ok := MapChart(Table{{Host: "Atlantis"}, {Host: "0"}}); ok {
		t.Error("MapChart() should report false when nothing resolves")
	}

	charts, err := BuildCharts(Table{{Host: "Atlantis", Year: 2030}})
	if err != nil {
		t.Fatalf("BuildCharts() error = %v", err)
	}
	if charts.Map != nil || charts.MapNote != NoLocationNotice {
		t.Errorf("map = %s, note = %q", charts.Map, charts.MapNote)
	}
	if charts.Line == nil || charts.Bubble == nil || charts.Gender == nil {
		t.Error("other charts should still render")
	}
}

func TestBuildCharts_FullTable(t *testing.T) {
	charts, err := BuildCharts(chartFixture())
	if err != nil {
		t.Fatalf("BuildCharts() error = %v", err)
	}
	if charts.MapNote != "" {
		t.Errorf("MapNote = %q, want empty", charts.MapNote)
	}

	for name, raw := range map[string][]byte{
		"line":   charts.Line,
		"bubble": charts.Bubble,
		"map":    charts.Map,
		"gender": charts.Gender,
	} {
		var decoded map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Errorf("%s chart is not valid JSON: %v", name, err)
		}
	}

	var mapSpec struct {
		Layer []struct {
			Data struct {
				URL    string           `json:"url"`
				Values []map[string]any `json:"values"`
			} `json:"data"`
		} `json:"layer"`
	}
	if err := json.Unmarshal(charts.Map, &mapSpec); err != nil {
		t.Fatalf("decode map chart: %v", err)
	}
	if len(mapSpec.Layer) != 2 {
		t.Fatalf("map layers = %d, want 2", len(mapSpec.Layer))
	}
	if mapSpec.Layer[0].Data.URL != worldAtlasURL {
		t.Errorf("base layer url = %q", mapSpec.Layer[0].Data.URL)
	}
	if len(mapSpec.Layer[1].Data.Values) != 2 {
		t.Errorf("point layer values = %d, want 2", len(mapSpec.Layer[1].Data.Values))
	}
}

func TestBubbleChart_LogAxisDropsZeroCountries(t *testing.T) {
	table := append(chartFixture(), Row{GameID: 3, Year: 2028, Host: "Los Angeles", EventType: "summer"})
	spec := BubbleChart(table)

	values, ok := spec.Data.Values.([]bubbleDatum)
	if !ok {
		t.Fatalf("values type %T", spec.Data.Values)
	}
	if len(values) != 2 {
		t.Errorf("got %d bubbles, want 2 (zero countries_count excluded)", len(values))
	}
	if spec.Encoding.X.Scale == nil || spec.Encoding.X.Scale.Type != "log" {
		t.Error("x axis should be logarithmic")
	}
	if spec.Encoding.Size.Field != "participants_total" {
		t.Errorf("size field = %q", spec.Encoding.Size.Field)
	}
}

func TestMeltGender(t *testing.T) {
	got := MeltGender(chartFixture())
	want := []GenderDatum{
		{Year: 1960, EventType: "summer", Gender: "Male", Count: 0},
		{Year: 1984, EventType: "winter", Gender: "Male", Count: 325},
		{Year: 1960, EventType: "summer", Gender: "Female", Count: 0},
		{Year: 1984, EventType: "winter", Gender: "Female", Count: 94},
	}
	if len(got) != len(want) {
		t.Fatalf("MeltGender() returned %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
