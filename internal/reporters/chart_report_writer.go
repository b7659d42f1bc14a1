package reporters

import (
	"fmt"
	"io"

	"weblog-stats/internal/models"

	"github.com/guptarohit/asciigraph"
)

const minChartHeight = 3

var chartCaptions = map[models.BucketKind]string{
	models.BucketHour:  "accesses per hour (0-23)",
	models.BucketDay:   "accesses per day of month (1-31)",
	models.BucketMonth: "accesses per month (1-12)",
}

type chartReportWriter struct {
	height int
}

// NewChartReportWriter plots the three counter arrays as ASCII line charts.
func NewChartReportWriter(height int) ReportWriter {
	if height < minChartHeight {
		height = minChartHeight
	}
	return &chartReportWriter{height: height}
}

func (c *chartReportWriter) Write(w io.Writer, report *models.AccessReport) error {
	for _, kind := range bucketKinds {
		counts := report.Counts(kind)
		data := make([]float64, len(counts))
		for i, count := range counts {
			data[i] = float64(count)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(c.height),
			asciigraph.Caption(chartCaptions[kind]),
		)
		if _, err := fmt.Fprintf(w, "%s\n\n", graph); err != nil {
			return err
		}
	}
	return nil
}
