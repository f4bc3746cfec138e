// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

// Package cli implements podiumctl, the operator tool for the record store.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/tomtom215/podium/internal/config"
	"github.com/tomtom215/podium/internal/database"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"
	Driver string // overrides database.driver when set
	DBPath string // overrides database.path when set

	// LoadConfig defaults to config.Load.
	LoadConfig func() (*config.Config, error)
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for podiumctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{LoadConfig: config.Load}

	cmd := &cobra.Command{
		Use:   "podiumctl",
		Short: "Podium record store tool",
		Long:  "Seed, import and inspect the Paralympics record store served by the Podium API.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "record store driver (duckdb|sqlite3), overrides DB_DRIVER")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "record store path, overrides DUCKDB_PATH")

	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewRecordsCommand(opts))
	cmd.AddCommand(NewCoordsCommand(opts))

	return cmd
}

// openStore loads configuration, applies flag overrides and opens the store.
func openStore(opts *RootOptions) (*database.DB, error) {
	cfg, err := opts.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dbCfg := cfg.Database
	if opts.Driver != "" {
		dbCfg.Driver = opts.Driver
	}
	if opts.DBPath != "" {
		dbCfg.Path = opts.DBPath
	}

	db, err := database.New(&dbCfg)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}
	return db, nil
}
