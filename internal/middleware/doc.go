// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides HTTP instrumentation middleware for the API.

Key Components:

  - PrometheusMetrics: request count, latency and in-flight gauge
  - AccessLog: per-request debug log line and slow request warnings

Both components label requests by their chi route pattern
("/api/v1/movies/{title}") rather than the raw path, so that movie titles
never become metric label values.

Middleware Stack:

	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Use(middleware.AccessLog(time.Second))
	    r.Get("/movies/{title}", handler.Movie)
	})

Request IDs and correlation IDs are attached by api.RequestIDWithLogging,
which runs before this package's middleware.
*/
package middleware
