// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

// Command podiumctl seeds, imports and inspects the Podium record store.
package main

import (
	"fmt"
	"os"

	"github.com/tomtom215/podium/internal/cli"
	"github.com/tomtom215/podium/internal/logging"
)

func main() {
	cfg := logging.DefaultConfig()
	cfg.Level = "warn"
	cfg.Format = "console"
	logging.Init(cfg)

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
