// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/podium/internal/dashboard"
)

// CoordsResult is the JSON output of coords.
type CoordsResult struct {
	Host  string  `json:"host"`
	City  string  `json:"city"`
	Found bool    `json:"found"`
	Lat   float64 `json:"lat,omitempty"`
	Lon   float64 `json:"lon,omitempty"`
}

// NewCoordsCommand creates the coords command.
func NewCoordsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "coords <host>",
		Short: "Resolve a host to the map coordinates the dashboard uses",
		Long: `Resolve a host to map coordinates. Combined hosts such as
"Stoke Mandeville, New York" resolve to their first city.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			host := args[0]
			res := CoordsResult{Host: host, City: dashboard.FirstHostCity(host)}
			if c, ok := dashboard.HostToCoordinates(host); ok {
				res.Found, res.Lat, res.Lon = true, c.Lat, c.Lon
			}

			if rootOpts.Format == "json" {
				if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
			} else if res.Found {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %g, %g\n", res.City, res.Lat, res.Lon); err != nil {
					return err
				}
			}

			if !res.Found {
				return fmt.Errorf("no coordinates for %q", res.City)
			}
			return nil
		},
	}
}
