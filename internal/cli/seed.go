// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/podium/internal/dataset"
	"github.com/tomtom215/podium/internal/models"
)

// LoadResult is the outcome of seed and import.
type LoadResult struct {
	Source   string `json:"source"`
	Loaded   int    `json:"loaded"`
	Skipped  bool   `json:"skipped"`
	Editions int    `json:"editions"`
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the bundled editions into an empty record store",
		Long: `Load the editions bundled with podium into the record store.

By default the store is left alone if it already holds editions. With --force
the bundled editions replace any stored rows with the same game id.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			editions, err := dataset.Bundled()
			if err != nil {
				return err
			}
			return runLoad(rootOpts, cmd, "bundled", editions, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "import even if the store is not empty")
	return cmd
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv>",
		Short: "Import editions from a CSV file",
		Long: `Import editions from a CSV file with the same columns as the bundled data
(type, year, country, host, start, end, disabilities_included, countries,
events, sports, participants_m, participants_f, participants, highlights, URL).
Rows replace stored editions with the same game id.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			editions, err := dataset.ParseFile(args[0])
			if err != nil {
				return err
			}
			return runLoad(rootOpts, cmd, args[0], editions, true)
		},
	}
}

func runLoad(opts *RootOptions, cmd *cobra.Command, source string, editions []models.Edition, force bool) error {
	db, err := openStore(opts)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	res := LoadResult{Source: source}

	if force {
		if err := db.ImportEditions(ctx, editions); err != nil {
			return err
		}
		res.Loaded = len(editions)
	} else {
		seeded, err := db.SeedIfEmpty(ctx, editions)
		if err != nil {
			return err
		}
		res.Skipped = !seeded
		if seeded {
			res.Loaded = len(editions)
		}
	}

	if res.Editions, err = db.CountEditions(ctx); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(out, res)
	}
	if res.Skipped {
		_, err = fmt.Fprintf(out, "store already holds %d editions, nothing loaded\n", res.Editions)
		return err
	}
	_, err = fmt.Fprintf(out, "loaded %d editions from %s (%d stored)\n", res.Loaded, res.Source, res.Editions)
	return err
}
