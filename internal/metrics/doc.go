// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics defines the Prometheus instrumentation for Marquee.

All collectors are registered on the default registry through promauto and
exposed by the API at /metrics.

# Metric Families

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Index:
  - catalog_index_build_duration_seconds
  - catalog_index_records, catalog_index_vocabulary_terms, catalog_index_generation
  - catalog_reload_failures_total{reason}

Recommendations:
  - recommend_query_duration_seconds{outcome}
  - recommend_cache_hits_total, recommend_cache_misses_total
*/
package metrics
