// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

// General API annotations for swag.
//
// @title Podium API
// @version 1.0
// @description Read-only access to every Paralympic Games edition in the record store.
// @description
// @description ## Records
// @description
// @description `GET /api/paralympics/all` returns a bare JSON array, one flattened object
// @description per edition. Text columns backed by optional sub-records may be null.
// @description Responses carry an ETag; send it back in `If-None-Match` to get 304.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {"code": "STORE_UNAVAILABLE", "message": "Record store unavailable"},
// @description   "metadata": {"timestamp": "2026-01-01T00:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/podium
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
package main
