// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/logging"
)

// RequiredColumn is the one column a snapshot must carry.
const RequiredColumn = "title"

// snapshotColumn describes how one optional or required column is projected.
type snapshotColumn struct {
	name string
	// expr wraps the quoted column reference; %[1]s is the reference.
	expr string
	// zero replaces the column when it is absent from the file.
	zero string
}

const (
	textExpr   = `COALESCE(TRY_CAST(%[1]s AS VARCHAR), '')`
	doubleExpr = `COALESCE(CASE WHEN isfinite(TRY_CAST(%[1]s AS DOUBLE)) THEN TRY_CAST(%[1]s AS DOUBLE) END, 0)`
)

// snapshotColumns lists the projection in Scan order.
var snapshotColumns = []snapshotColumn{
	{name: "title", expr: textExpr, zero: `''`},
	{name: "release_date", expr: `TRY_CAST(%[1]s AS DATE)`, zero: `CAST(NULL AS DATE)`},
	{name: "release_year", expr: `COALESCE(TRY_CAST(%[1]s AS INTEGER), 0)`, zero: `0`},
	{name: "vote_average", expr: doubleExpr, zero: `0.0`},
	{name: "vote_count", expr: `COALESCE(TRY_CAST(TRY_CAST(%[1]s AS DOUBLE) AS BIGINT), 0)`, zero: `CAST(0 AS BIGINT)`},
	{name: "popularity", expr: doubleExpr, zero: `0.0`},
	{name: "cast", expr: textExpr, zero: `''`},
	{name: "crew", expr: textExpr, zero: `''`},
	{name: "job", expr: textExpr, zero: `''`},
	{name: "return", expr: doubleExpr, zero: `0.0`},
	{name: "budget", expr: doubleExpr, zero: `0.0`},
	{name: "revenue", expr: doubleExpr, zero: `0.0`},
}

// SnapshotReader reads parquet snapshots through DuckDB. It implements catalog.Source.
type SnapshotReader struct {
	db *DB
}

// NewSnapshotReader creates a reader backed by db.
func NewSnapshotReader(db *DB) *SnapshotReader {
	return &SnapshotReader{db: db}
}

// ReadSnapshot returns every row of the parquet file at path in file order.
// Failures are reported as *catalog.LoadError.
func (r *SnapshotReader) ReadSnapshot(ctx context.Context, path string) ([]catalog.Record, error) {
	if _, err := os.Stat(path); err != nil {
		reason := catalog.ReasonUnreadable
		if errors.Is(err, fs.ErrNotExist) {
			reason = catalog.ReasonMissing
		}
		return nil, &catalog.LoadError{Path: path, Reason: reason, Err: err}
	}

	source := fmt.Sprintf("read_parquet(%s, file_row_number = true)", quoteLiteral(path))

	present, err := r.columns(ctx, source)
	if err != nil {
		return nil, &catalog.LoadError{Path: path, Reason: catalog.ReasonUnreadable, Err: err}
	}
	if !present[RequiredColumn] {
		return nil, &catalog.LoadError{
			Path:   path,
			Reason: catalog.ReasonMissingColumn,
			Err:    fmt.Errorf("required column %q not found", RequiredColumn),
		}
	}

	start := time.Now()
	records, err := r.readRows(ctx, buildSnapshotQuery(source, present))
	if err != nil {
		return nil, &catalog.LoadError{Path: path, Reason: catalog.ReasonUnreadable, Err: err}
	}

	logging.Debug().
		Str("path", path).
		Int("rows", len(records)).
		Dur("duration", time.Since(start)).
		Msg("Snapshot rows read")

	return records, nil
}

// columns returns the set of lower-cased column names of source.
func (r *SnapshotReader) columns(ctx context.Context, source string) (map[string]bool, error) {
	rows, err := r.db.conn.QueryContext(ctx, "SELECT * FROM "+source+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer closeWithLog(rows, "rows")

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}

	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[strings.ToLower(name)] = true
	}
	return present, nil
}

func (r *SnapshotReader) readRows(ctx context.Context, query string) ([]catalog.Record, error) {
	rows, err := r.db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var records []catalog.Record
	for rows.Next() {
		var (
			rec         catalog.Record
			releaseDate sql.NullTime
		)
		if err := rows.Scan(
			&rec.Title,
			&releaseDate,
			&rec.ReleaseYear,
			&rec.VoteAverage,
			&rec.VoteCount,
			&rec.Popularity,
			&rec.Cast,
			&rec.Crew,
			&rec.Job,
			&rec.Return,
			&rec.Budget,
			&rec.Revenue,
		); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row %d: %w", len(records), err)
		}
		if releaseDate.Valid {
			d := releaseDate.Time.UTC()
			rec.ReleaseDate = &d
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshot rows: %w", err)
	}
	return records, nil
}

// buildSnapshotQuery projects snapshotColumns, substituting zero values for
// columns the file lacks, ordered by position in the file.
func buildSnapshotQuery(source string, present map[string]bool) string {
	exprs := make([]string, len(snapshotColumns))
	for i, col := range snapshotColumns {
		if present[col.name] {
			exprs[i] = fmt.Sprintf(col.expr, quoteIdent(col.name))
		} else {
			exprs[i] = col.zero
		}
	}
	return "SELECT " + strings.Join(exprs, ", ") + " FROM " + source + " ORDER BY file_row_number"
}

// quoteIdent quotes a column name; cast and return are reserved words.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
