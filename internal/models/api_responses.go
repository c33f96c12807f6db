// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"time"

	"github.com/tomtom215/marquee/internal/catalog"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "NOT_FOUND",
//	    "message": "Movie not found"
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
// QueryTimeMS is omitted for responses that did no catalog work.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - NOT_FOUND: No movie, actor or director matched
//   - INSUFFICIENT_VOTES: Film is below the configured vote floor
//   - NOT_READY: Catalog index has not been built yet
//   - INTERNAL_ERROR: Unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RecommendationResponse is the payload of the recommendations endpoint.
// Recommendations holds the titles of Movies in the same order.
type RecommendationResponse struct {
	Title           string           `json:"title"`
	K               int              `json:"k"`
	Recommendations []string         `json:"recommendations"`
	Movies          []catalog.Record `json:"movies"`
}

// ReleaseCount is the payload of the month and weekday release endpoints.
type ReleaseCount struct {
	// Period is the name as given in the request.
	Period string `json:"period"`
	// Canonical is the English name of the month or weekday.
	Canonical string `json:"canonical"`
	Count     int    `json:"count"`
}

// DirectorResponse lists the films credited to a director.
type DirectorResponse struct {
	Director string                 `json:"director"`
	Films    []catalog.DirectorFilm `json:"films"`
}

// HealthStatus is the payload of the readiness endpoint.
type HealthStatus struct {
	Ready          bool       `json:"ready"`
	Generation     uint64     `json:"generation,omitempty"`
	Records        int        `json:"records,omitempty"`
	Vocabulary     int        `json:"vocabulary,omitempty"`
	BuiltAt        *time.Time `json:"built_at,omitempty"`
	BuildTimeMS    int64      `json:"build_time_ms,omitempty"`
	UptimeSeconds  float64    `json:"uptime_seconds"`
	SnapshotSource string     `json:"snapshot_source,omitempty"`
}
