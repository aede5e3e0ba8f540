// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

// Package metrics provides Prometheus instrumentation for the engine:
// catalog load statistics, per-recommender query counters and latency,
// resolver outcomes, and API request metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog Metrics
	CatalogRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inka_catalog_rows",
			Help: "Number of movie rows in the loaded catalog",
		},
	)

	CatalogRowsSkipped = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inka_catalog_rows_skipped",
			Help: "Number of malformed source rows skipped during the last load",
		},
	)

	// Recommender Metrics
	RecommendQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inka_recommend_queries_total",
			Help: "Total number of recommendation queries by recommender and outcome",
		},
		[]string{"recommender", "outcome"}, // outcome: "results", "empty", "not_found"
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inka_recommend_duration_seconds",
			Help:    "Recommendation query duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"recommender"},
	)

	// Resolver Metrics
	ResolverOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inka_resolver_outcomes_total",
			Help: "Fuzzy match resolver outcomes by field",
		},
		[]string{"field", "outcome"}, // field: "genre", "director"; outcome: "resolved", "not_found"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inka_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inka_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inka_api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordCatalogLoad records the result of a catalog load.
func RecordCatalogLoad(rows, skipped int) {
	CatalogRows.Set(float64(rows))
	CatalogRowsSkipped.Set(float64(skipped))
}

// RecordRecommendation records one recommendation query.
func RecordRecommendation(recommender string, start time.Time, results int, notFound bool) {
	outcome := "results"
	switch {
	case notFound:
		outcome = "not_found"
	case results == 0:
		outcome = "empty"
	}
	RecommendQueries.WithLabelValues(recommender, outcome).Inc()
	RecommendDuration.WithLabelValues(recommender).Observe(time.Since(start).Seconds())
}

// RecordResolver records a fuzzy resolver outcome.
func RecordResolver(field string, resolved bool) {
	outcome := "resolved"
	if !resolved {
		outcome = "not_found"
	}
	ResolverOutcomes.WithLabelValues(field, outcome).Inc()
}

// RecordAPIRequest records an API request with its duration.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
