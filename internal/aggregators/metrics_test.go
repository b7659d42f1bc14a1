package aggregators

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"weblog-stats/internal/models"
	"weblog-stats/internal/shared/metrics"

	"github.com/stretchr/testify/assert"
)

// Not parallel: the gauge is process wide and parallel tests publish reports too.
func TestPublishLastReport(t *testing.T) {
	report := &models.AccessReport{}
	report.HourCounts[11] = 7
	report.DayCounts[30] = 3
	report.MonthCounts[11] = 10

	publishLastReport(report)

	rr := httptest.NewRecorder()
	metrics.PromHTTP.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()

	assert.Contains(t, body, `weblog_stats_aggregation_last_report_accesses{bucket="hour-11",kind="hour"} 7`)
	assert.Contains(t, body, `weblog_stats_aggregation_last_report_accesses{bucket="hour-00",kind="hour"} 0`)
	assert.Contains(t, body, `weblog_stats_aggregation_last_report_accesses{bucket="day-31",kind="day"} 3`)
	assert.Contains(t, body, `weblog_stats_aggregation_last_report_accesses{bucket="month-12",kind="month"} 10`)
}
