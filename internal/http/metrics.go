package http

import (
	"weblog-stats/internal/shared/metrics"
)

var httpMetricLabels = []string{"method", "path", "status", metrics.FieldErrorCode}

var (
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
			Help:      "HTTP requests served, by route pattern and outcome.",
		},
		httpMetricLabels,
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_latency_seconds",
			Help:      "HTTP request latency; each stats request runs a full aggregation.",
			Buckets:   metrics.DefBuckets,
		},
		httpMetricLabels,
	)
)
