// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee server.

Marquee serves read-only queries over a movie catalog snapshot (a parquet
file read through DuckDB) and recommends titles by TF-IDF cosine similarity.

# Startup

 1. Configuration: koanf v2 (defaults, then config.yaml, then environment)
 2. Logging: zerolog, JSON or console
 3. Database: in-memory DuckDB used to read the snapshot
 4. Catalog build: snapshot load and title index, once, before serving.
    A missing or unreadable snapshot, or one without a title column, is fatal.
 5. Supervisor tree:

	RootSupervisor ("marquee")
	├── DataSupervisor ("data-layer")
	│   └── CatalogReloadService (CATALOG_RELOAD_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

SIGINT and SIGTERM cancel the root context; the HTTP server drains for up to
HTTP_SHUTDOWN_TIMEOUT.

# Running

	CATALOG_SNAPSHOT_PATH=data/movies_dataset.parquet HTTP_PORT=8000 ./marquee

	curl localhost:8000/api/v1/recommendations/The%20Matrix?k=5
*/
package main
