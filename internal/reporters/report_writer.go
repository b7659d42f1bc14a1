package reporters

import (
	"fmt"
	"io"
	"strings"

	"weblog-stats/internal/models"
)

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatChart = "chart"
)

// ReportWriter renders an access report to w.
type ReportWriter interface {
	Write(w io.Writer, report *models.AccessReport) error
}

// NewReportWriter returns the writer for format. chartHeight only applies to charts.
func NewReportWriter(format string, chartHeight int) (ReportWriter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText:
		return NewTextReportWriter(), nil
	case FormatJSON:
		return NewJSONReportWriter(), nil
	case FormatChart:
		return NewChartReportWriter(chartHeight), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %q", format)
	}
}

// columnHeaders are the table headers per bucket kind.
var columnHeaders = map[models.BucketKind]string{
	models.BucketHour:  "Hr: Count",
	models.BucketDay:   "Day: Count",
	models.BucketMonth: "Month: Count",
}

var bucketKinds = []models.BucketKind{models.BucketHour, models.BucketDay, models.BucketMonth}
