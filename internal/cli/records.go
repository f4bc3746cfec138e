// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/podium/internal/models"
)

// NewRecordsCommand creates the records command.
func NewRecordsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "records",
		Short:         "Print every flattened edition",
		Long:          "Print every edition exactly as GET /api/paralympics/all would serve it.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer db.Close()

			editions, err := db.GetAllRecords(cmd.Context())
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), editions)
			}
			return writeRecordTable(cmd.OutOrStdout(), editions)
		},
	}
}

func writeRecordTable(w io.Writer, editions []models.Edition) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tYEAR\tTYPE\tHOST\tCOUNTRY\tPARTICIPANTS\tCOUNTRIES")
	for _, e := range editions {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%d\t%d\n",
			e.GameID, e.Year, e.EventType,
			models.StringValue(e.Host), models.StringValue(e.Country),
			e.ParticipantsTotal, e.CountriesCount)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
