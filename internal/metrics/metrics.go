// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Index Metrics
	IndexBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_index_build_duration_seconds",
			Help:    "Time to load the snapshot and build the title index",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	IndexRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_index_records",
			Help: "Number of catalog records in the live index",
		},
	)

	IndexVocabulary = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_index_vocabulary_terms",
			Help: "Number of distinct title terms in the live index",
		},
	)

	IndexGeneration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_index_generation",
			Help: "Generation counter of the live index, incremented per swap",
		},
	)

	ReloadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reload_failures_total",
			Help: "Total number of failed snapshot rebuilds",
		},
		[]string{"reason"},
	)

	// Recommendation Metrics
	RecommendQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_query_duration_seconds",
			Help:    "Duration of title recommendation queries",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"outcome"}, // "hit", "computed", "not_found"
	)

	RecommendCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_hits_total",
			Help: "Total number of recommendation result cache hits",
		},
	)

	RecommendCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_misses_total",
			Help: "Total number of recommendation result cache misses",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordIndexBuild records a successful rebuild and the shape of the new index.
func RecordIndexBuild(duration time.Duration, records, vocabulary int, generation uint64) {
	IndexBuildDuration.Observe(duration.Seconds())
	IndexRecords.Set(float64(records))
	IndexVocabulary.Set(float64(vocabulary))
	IndexGeneration.Set(float64(generation))
}

// RecordReloadFailure counts a failed rebuild by LoadError reason.
func RecordReloadFailure(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	ReloadFailures.WithLabelValues(reason).Inc()
}

// RecordRecommendQuery records the latency of one recommendation query.
func RecordRecommendQuery(outcome string, duration time.Duration) {
	RecommendQueryDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordCacheLookup counts a result cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		RecommendCacheHits.Inc()
	} else {
		RecommendCacheMisses.Inc()
	}
}
