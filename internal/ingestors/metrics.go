package ingestors

import (
	"weblog-stats/internal/shared/metrics"
)

// metricLinesReadTotal counts non-blank log lines; error_code is ING_1000 for malformed lines.
var metricLinesReadTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubIngestion,
		Name:      "lines_read_total",
		Help:      "Access log lines read, by parse outcome.",
	},
	[]string{metrics.FieldErrorCode},
)
