// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package database reads the movie snapshot with an in-process DuckDB engine.

DuckDB runs purely in memory; the parquet snapshot is queried in place with
read_parquet and rows are returned in file order (file_row_number), which is
the order the catalog assigns ordinals in.

# Snapshot Columns

Only title is required. Every other column is optional and is replaced by a
zero value when absent or not convertible:

	title         VARCHAR   (NULL becomes "")
	release_date  DATE
	release_year  INTEGER
	vote_average  DOUBLE
	vote_count    BIGINT
	popularity    DOUBLE
	cast, crew, job VARCHAR
	return, budget, revenue DOUBLE

Non-finite doubles (NaN, Inf) are read as 0.

# Usage

	db, err := database.Open(&cfg.Database)
	if err != nil { ... }
	defer db.Close()

	store, err := catalog.Load(ctx, database.NewSnapshotReader(db), cfg.Catalog.SnapshotPath)
*/
package database
