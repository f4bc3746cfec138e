// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

/*
Package main is the entry point for the Podium API server.

The server exposes the Paralympic Games editions held in the record store as
one flattened JSON array, plus liveness, readiness and Prometheus endpoints.

# Application Architecture

	RootSupervisor ("podium-api")
	├── DataSupervisor ("data-layer")
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Record store: DuckDB (default) or SQLite, schema created on open
 4. Seeding: bundled editions loaded into an empty store when SEED_DATA=true
 5. Supervisor Tree: Suture v4 process supervision
 6. HTTP Server: Chi router with middleware stack

# Configuration

	HTTP_PORT=8000              listen port
	DB_DRIVER=duckdb            duckdb or sqlite3
	DUCKDB_PATH=/data/podium.duckdb
	SEED_DATA=true              load bundled editions into an empty store
	CORS_ORIGINS=*              comma-separated origins
	LOG_LEVEL=info              trace, debug, info, warn, error
	LOG_FORMAT=json             json or console

# Signal Handling

SIGINT and SIGTERM stop the supervisor tree. The HTTP server drains in-flight
requests for up to 10 seconds and the record store is checkpointed on close.
*/
package main
