// Package metrics declares the Prometheus collectors shared by the engine and API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Evaluations counts cost-model evaluations by caller ("grid", "sweep", "compare", "single").
	Evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "davisbacon_evaluations_total",
		Help: "Cost model evaluations by caller",
	}, []string{"source"})

	GridCells = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "davisbacon_grid_cells",
		Help:    "Cells per sensitivity grid",
		Buckets: []float64{4, 25, 100, 400, 1600, 10000, 250000},
	})

	// CacheLookups counts result cache lookups by outcome ("hit", "miss").
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "davisbacon_cache_lookups_total",
		Help: "Result cache lookups by outcome",
	}, []string{"outcome"})

	// RejectedRequests counts engine errors by kind.
	RejectedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "davisbacon_rejected_requests_total",
		Help: "Requests rejected by the engine, by error code",
	}, []string{"code"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "davisbacon_http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "davisbacon_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)
