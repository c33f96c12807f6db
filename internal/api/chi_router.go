// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/marquee/internal/middleware"
)

// Router wires the Handler into a chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil ChiMiddleware selects the defaults.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global Middleware Stack
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, codeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Get("/", router.handler.Root)

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.AccessLog(middleware.DefaultSlowThreshold))

		r.Get("/movies/{title}", router.handler.Movie)
		r.Get("/movies/{title}/score", router.handler.MovieScore)
		r.Get("/movies/{title}/votes", router.handler.MovieVotes)
		r.Get("/recommendations/{title}", router.handler.Recommendations)

		r.Get("/releases/month/{month}", router.handler.ReleasesByMonth)
		r.Get("/releases/weekday/{day}", router.handler.ReleasesByWeekday)

		r.Get("/actors/{name}", router.handler.Actor)
		r.Get("/directors/{name}", router.handler.Director)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
