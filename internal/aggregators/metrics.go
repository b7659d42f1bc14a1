package aggregators

import (
	"weblog-stats/internal/models"
	"weblog-stats/internal/shared/metrics"
)

// metricEntriesAnalyzedTotal counts log entries counted by each analysis pass.
//
// The pass label is one of "hourly", "daily" or "monthly". A report run reads the
// input once per pass, so for a healthy run all three grow by the same amount.
var (
	metricEntriesAnalyzedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "entries_analyzed_total",
		},
		[]string{metrics.FieldPass},
	)

	metricReportGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "report_generated_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricLastReportAccesses holds the counters of the most recent successful report,
	// e.g. {kind="hour",bucket="hour-05"}.
	metricLastReportAccesses = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "last_report_accesses",
			Help:      "Accesses per bucket in the most recent report.",
		},
		[]string{metrics.FieldKind, metrics.FieldBucket},
	)
)

func publishLastReport(report *models.AccessReport) {
	for _, kind := range []models.BucketKind{models.BucketHour, models.BucketDay, models.BucketMonth} {
		for _, bucket := range report.Buckets(kind) {
			metricLastReportAccesses.WithLabelValues(string(kind), bucket.BucketID).Set(float64(bucket.Count))
		}
	}
}
