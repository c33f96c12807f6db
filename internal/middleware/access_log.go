// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
)

// DefaultSlowThreshold is the latency above which AccessLog warns.
const DefaultSlowThreshold = time.Second

// AccessLog logs every request at debug level through the request's context
// logger, and warns when a request takes longer than slow.
// slow <= 0 selects DefaultSlowThreshold.
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	if slow <= 0 {
		slow = DefaultSlowThreshold
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())

			event := logger.Debug()
			msg := "Request served"
			if duration > slow {
				event = logger.Warn().Int64("threshold_ms", slow.Milliseconds())
				msg = "Slow request detected"
			}
			event.
				Str("method", r.Method).
				Str("route", routePattern(r)).
				Int("status", wrapper.statusCode).
				Int64("duration_ms", duration.Milliseconds()).
				Msg(msg)
		})
	}
}
