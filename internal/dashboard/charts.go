// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"github.com/goccy/go-json"

	"github.com/tomtom215/podium/internal/models"
)

// Chart constants shared by every Vega-Lite spec.
const (
	vegaLiteSchema = "https://vega.github.io/schema/vega-lite/v5.json"
	worldAtlasURL  = "https://cdn.jsdelivr.net/npm/vega-datasets@v2/data/world-110m.json"

	// NoLocationNotice replaces the map when no filtered row has coordinates.
	NoLocationNotice = "No location data available for current selection."
)

var (
	eventTypeDomain = []string{models.EventTypeSummer, models.EventTypeWinter}
	eventTypeColors = []string{"#ff7f0e", "#1f77b4"}

	genderDomain = []string{"Male", "Female"}
	genderColors = []string{"#1f77b4", "#e377c2"}
)

// ChartSpec is the subset of a Vega-Lite specification the dashboard emits.
type ChartSpec struct {
	Schema     string      `json:"$schema,omitempty"`
	Title      string      `json:"title,omitempty"`
	Width      interface{} `json:"width,omitempty"`
	Height     int         `json:"height,omitempty"`
	Data       *ChartData  `json:"data,omitempty"`
	Projection *Projection `json:"projection,omitempty"`
	Mark       *Mark       `json:"mark,omitempty"`
	Encoding   *Encoding   `json:"encoding,omitempty"`
	Params     []Param     `json:"params,omitempty"`
	Layer      []LayerSpec `json:"layer,omitempty"`
}

// LayerSpec is one layer of a layered view. It does not nest further.
type LayerSpec struct {
	Data     *ChartData `json:"data,omitempty"`
	Mark     *Mark      `json:"mark,omitempty"`
	Encoding *Encoding  `json:"encoding,omitempty"`
}

// ChartData is either inline values or a URL.
type ChartData struct {
	Values interface{} `json:"values,omitempty"`
	URL    string      `json:"url,omitempty"`
	Format *DataFormat `json:"format,omitempty"`
}

// DataFormat describes URL data.
type DataFormat struct {
	Type    string `json:"type"`
	Feature string `json:"feature,omitempty"`
}

// Projection is a geographic projection.
type Projection struct {
	Type string `json:"type"`
}

// Mark is the graphical mark of a view.
type Mark struct {
	Type    string  `json:"type"`
	Point   bool    `json:"point,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
	Fill    string  `json:"fill,omitempty"`
	Stroke  string  `json:"stroke,omitempty"`
}

// Encoding maps data fields to visual channels.
type Encoding struct {
	X         *Channel  `json:"x,omitempty"`
	Y         *Channel  `json:"y,omitempty"`
	Longitude *Channel  `json:"longitude,omitempty"`
	Latitude  *Channel  `json:"latitude,omitempty"`
	Color     *Channel  `json:"color,omitempty"`
	Size      *Channel  `json:"size,omitempty"`
	Column    *Channel  `json:"column,omitempty"`
	Tooltip   []Channel `json:"tooltip,omitempty"`
}

// Channel is a single field encoding.
type Channel struct {
	Field string `json:"field"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	Scale *Scale `json:"scale,omitempty"`
	Stack string `json:"stack,omitempty"`
}

// Scale configures a channel's scale.
type Scale struct {
	Type   string   `json:"type,omitempty"`
	Domain []string `json:"domain,omitempty"`
	Range  []string `json:"range,omitempty"`
}

// Param is a Vega-Lite parameter; the dashboard only uses scale-bound
// interval selections for pan and zoom.
type Param struct {
	Name   string `json:"name"`
	Select string `json:"select"`
	Bind   string `json:"bind"`
}

type lineDatum struct {
	Year              int    `json:"year"`
	EventType         string `json:"event_type"`
	Host              string `json:"host"`
	ParticipantsTotal int64  `json:"participants_total"`
	Sports            int64  `json:"sports"`
}

type bubbleDatum struct {
	Host              string `json:"host"`
	EventType         string `json:"event_type"`
	CountriesCount    int64  `json:"countries_count"`
	Sports            int64  `json:"sports"`
	ParticipantsTotal int64  `json:"participants_total"`
}

type mapDatum struct {
	Host              string  `json:"host"`
	Country           string  `json:"country"`
	EventType         string  `json:"event_type"`
	Year              int     `json:"year"`
	ParticipantsTotal int64   `json:"participants_total"`
	Lat               float64 `json:"lat"`
	Lon               float64 `json:"lon"`
}

// GenderDatum is one row of the melted participation table.
type GenderDatum struct {
	Year      int    `json:"year"`
	EventType string `json:"event_type"`
	Gender    string `json:"Gender"`
	Count     int64  `json:"Count"`
}

func eventTypeColor(title string) *Channel {
	return &Channel{
		Field: "event_type",
		Type:  "nominal",
		Title: title,
		Scale: &Scale{Domain: eventTypeDomain, Range: eventTypeColors},
	}
}

// LineChart plots total participants per year, one line per event type.
func LineChart(t Table) ChartSpec {
	values := make([]lineDatum, 0, len(t))
	for _, row := range t {
		values = append(values, lineDatum{
			Year:              row.Year,
			EventType:         row.EventType,
			Host:              row.Host,
			ParticipantsTotal: row.ParticipantsTotal,
			Sports:            row.Sports,
		})
	}

	return ChartSpec{
		Schema: vegaLiteSchema,
		Title:  "Total Participants over Years",
		Width:  "container",
		Height: 400,
		Data:   &ChartData{Values: values},
		Mark:   &Mark{Type: "line", Point: true},
		Encoding: &Encoding{
			X:     &Channel{Field: "year", Type: "ordinal", Title: "Year"},
			Y:     &Channel{Field: "participants_total", Type: "quantitative", Title: "Total Participants"},
			Color: eventTypeColor("Type"),
			Tooltip: []Channel{
				{Field: "year", Type: "ordinal"},
				{Field: "host", Type: "nominal"},
				{Field: "participants_total", Type: "quantitative"},
				{Field: "sports", Type: "quantitative"},
			},
		},
		Params: []Param{{Name: "grid", Select: "interval", Bind: "scales"}},
	}
}

// BubbleChart plots sports against countries on a log axis with bubble
// area proportional to participants. Rows without a positive country count
// cannot sit on a log axis and are left out.
func BubbleChart(t Table) ChartSpec {
	values := make([]bubbleDatum, 0, len(t))
	for _, row := range t {
		if row.CountriesCount <= 0 {
			continue
		}
		values = append(values, bubbleDatum{
			Host:              row.Host,
			EventType:         row.EventType,
			CountriesCount:    row.CountriesCount,
			Sports:            row.Sports,
			ParticipantsTotal: row.ParticipantsTotal,
		})
	}

	return ChartSpec{
		Schema: vegaLiteSchema,
		Title:  "Sports vs. Countries Counts",
		Width:  "container",
		Height: 400,
		Data:   &ChartData{Values: values},
		Mark:   &Mark{Type: "circle", Opacity: 0.7},
		Encoding: &Encoding{
			X:     &Channel{Field: "countries_count", Type: "quantitative", Title: "Countries", Scale: &Scale{Type: "log"}},
			Y:     &Channel{Field: "sports", Type: "quantitative", Title: "Sports"},
			Color: eventTypeColor("Type"),
			Size:  &Channel{Field: "participants_total", Type: "quantitative", Title: "Participants"},
			Tooltip: []Channel{
				{Field: "host", Type: "nominal"},
				{Field: "countries_count", Type: "quantitative"},
				{Field: "sports", Type: "quantitative"},
				{Field: "participants_total", Type: "quantitative"},
			},
		},
	}
}

// MapChart places each edition at its host city's coordinates on a
// natural-earth projection. It returns false when no row resolves, in which
// case the caller shows NoLocationNotice instead.
func MapChart(t Table) (ChartSpec, bool) {
	values := make([]mapDatum, 0, len(t))
	for _, row := range t {
		c, ok := HostToCoordinates(row.Host)
		if !ok {
			continue
		}
		values = append(values, mapDatum{
			Host:              row.Host,
			Country:           row.Country,
			EventType:         row.EventType,
			Year:              row.Year,
			ParticipantsTotal: row.ParticipantsTotal,
			Lat:               c.Lat,
			Lon:               c.Lon,
		})
	}
	if len(values) == 0 {
		return ChartSpec{}, false
	}

	return ChartSpec{
		Schema:     vegaLiteSchema,
		Title:      "Global Host Locations",
		Width:      "container",
		Height:     400,
		Projection: &Projection{Type: "naturalEarth1"},
		Layer: []LayerSpec{
			{
				Data: &ChartData{URL: worldAtlasURL, Format: &DataFormat{Type: "topojson", Feature: "countries"}},
				Mark: &Mark{Type: "geoshape", Fill: "#f2f2f2", Stroke: "lightgray"},
			},
			{
				Data: &ChartData{Values: values},
				Mark: &Mark{Type: "circle", Opacity: 0.8},
				Encoding: &Encoding{
					Longitude: &Channel{Field: "lon", Type: "quantitative"},
					Latitude:  &Channel{Field: "lat", Type: "quantitative"},
					Color:     eventTypeColor("Type"),
					Size:      &Channel{Field: "participants_total", Type: "quantitative", Title: "Participants"},
					Tooltip: []Channel{
						{Field: "host", Type: "nominal"},
						{Field: "year", Type: "ordinal"},
						{Field: "participants_total", Type: "quantitative"},
						{Field: "country", Type: "nominal"},
					},
				},
			},
		},
	}, true
}

// MeltGender reshapes t into one Male and one Female row per edition, all
// Male rows first, as a long-format melt does.
func MeltGender(t Table) []GenderDatum {
	out := make([]GenderDatum, 0, 2*len(t))
	for _, row := range t {
		out = append(out, GenderDatum{Year: row.Year, EventType: row.EventType, Gender: "Male", Count: row.ParticipantsM})
	}
	for _, row := range t {
		out = append(out, GenderDatum{Year: row.Year, EventType: row.EventType, Gender: "Female", Count: row.ParticipantsF})
	}
	return out
}

// GenderChart is a centered stacked area of male and female participants,
// one panel per event type.
func GenderChart(t Table) ChartSpec {
	return ChartSpec{
		Schema: vegaLiteSchema,
		Title:  "Male vs Female Participants",
		Width:  350,
		Data:   &ChartData{Values: MeltGender(t)},
		Mark:   &Mark{Type: "area", Opacity: 0.6},
		Encoding: &Encoding{
			X:      &Channel{Field: "year", Type: "ordinal"},
			Y:      &Channel{Field: "Count", Type: "quantitative", Stack: "center"},
			Color:  &Channel{Field: "Gender", Type: "nominal", Scale: &Scale{Domain: genderDomain, Range: genderColors}},
			Column: &Channel{Field: "event_type", Type: "nominal"},
			Tooltip: []Channel{
				{Field: "year", Type: "ordinal"},
				{Field: "Gender", Type: "nominal"},
				{Field: "Count", Type: "quantitative"},
			},
		},
	}
}

// Charts holds the serialized specs for one render.
type Charts struct {
	Line    []byte
	Bubble  []byte
	Map     []byte // nil when no row has coordinates
	Gender  []byte
	MapNote string
}

// BuildCharts serializes every chart for t.
func BuildCharts(t Table) (Charts, error) {
	var (
		c   Charts
		err error
	)
	if c.Line, err = json.Marshal(LineChart(t)); err != nil {
		return Charts{}, err
	}
	if c.Bubble, err = json.Marshal(BubbleChart(t)); err != nil {
		return Charts{}, err
	}
	if spec, ok := MapChart(t); ok {
		if c.Map, err = json.Marshal(spec); err != nil {
			return Charts{}, err
		}
	} else {
		c.MapNote = NoLocationNotice
	}
	if c.Gender, err = json.Marshal(GenderChart(t)); err != nil {
		return Charts{}, err
	}
	return c, nil
}
