// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed host_coordinates.yaml
var hostCoordinatesYAML []byte

// Coordinates is a point in decimal degrees.
type Coordinates struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lon float64 `yaml:"lon" json:"lon"`
}

var hostCoordinates = mustLoadCoordinates(hostCoordinatesYAML)

// loadCoordinates parses a city -> coordinates table. Keys are NFC
// normalized so composed and decomposed spellings match.
func loadCoordinates(data []byte) (map[string]Coordinates, error) {
	var raw map[string]Coordinates
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse host coordinates: %w", err)
	}
	table := make(map[string]Coordinates, len(raw))
	for city, c := range raw {
		table[norm.NFC.String(city)] = c
	}
	return table, nil
}

func mustLoadCoordinates(data []byte) map[string]Coordinates {
	table, err := loadCoordinates(data)
	if err != nil {
		panic(err)
	}
	return table
}

// FirstHostCity returns the first comma-separated city of host, trimmed.
func FirstHostCity(host string) string {
	first, _, _ := strings.Cut(host, ",")
	return strings.TrimSpace(first)
}

// HostToCoordinates resolves the first city of host. Unknown or empty hosts
// report false; there is no (0, 0) fallback.
func HostToCoordinates(host string) (Coordinates, bool) {
	city := FirstHostCity(host)
	if city == "" {
		return Coordinates{}, false
	}
	c, ok := hostCoordinates[norm.NFC.String(city)]
	return c, ok
}

// KnownHosts lists the cities with coordinates, sorted.
func KnownHosts() []string {
	hosts := make([]string, 0, len(hostCoordinates))
	for city := range hostCoordinates {
		hosts = append(hosts, city)
	}
	sort.Strings(hosts)
	return hosts
}
