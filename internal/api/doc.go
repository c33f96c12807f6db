// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api provides the HTTP surface of the catalog and recommender, routed with chi.

Endpoints:

	GET /api/v1/health/live                liveness probe
	GET /api/v1/health/ready               503 until the first catalog build
	GET /api/v1/movies/{title}             catalog record
	GET /api/v1/movies/{title}/score       release year and vote average
	GET /api/v1/movies/{title}/votes       vote count and average (vote floor applies)
	GET /api/v1/recommendations/{title}    similar titles, ?k= bounds the count
	GET /api/v1/releases/month/{month}     films released in a month
	GET /api/v1/releases/weekday/{day}     films released on a weekday
	GET /api/v1/actors/{name}              film count and return of an actor
	GET /api/v1/directors/{name}           films credited to a director
	GET /metrics                           Prometheus metrics

Titles containing a slash must be sent escaped ("Face%2FOff").

Every response uses the models.APIResponse envelope. Errors map to statuses as
follows: validation failures and insufficient votes are 400, unknown titles and
names are 404, requests issued before the catalog is built are 503, anything
else is 500.

Month and weekday names are accepted in Spanish ("enero", "miércoles") or
English, ignoring case and accents.
*/
package api
