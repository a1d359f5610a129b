// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the recommendation service:
// - API endpoint latency and throughput
// - Engine operation volume per request type
// - Catalog availability and size

var (
	// API Endpoint Metrics
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
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Engine Metrics
	RecommendationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_recommendations_total",
			Help: "Total recommendation operations by type and outcome",
		},
		[]string{"operation", "request_type", "outcome"}, // outcome: "success", "catalog_unavailable"
	)

	RecommendationCount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "engine_recommendation_items",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
		[]string{"operation"},
	)

	DeficienciesDetected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_deficiencies_detected_total",
			Help: "Total nutrient deficiencies flagged in complementary lookups",
		},
	)

	// Catalog Metrics
	CatalogFetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_fetch_errors_total",
			Help: "Total failed catalog fetches",
		},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_records",
			Help: "Number of records in the last successfully loaded catalog",
		},
	)
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordEngineOperation records one engine call's outcome and result size.
func RecordEngineOperation(operation, requestType string, success bool, items int) {
	outcome := "success"
	if !success {
		outcome = "catalog_unavailable"
		CatalogFetchErrors.Inc()
	}
	RecommendationsGenerated.WithLabelValues(operation, requestType, outcome).Inc()
	if success {
		RecommendationCount.WithLabelValues(operation).Observe(float64(items))
	}
}
