package reporters

import (
	"bufio"
	"fmt"
	"io"

	"weblog-stats/internal/models"
)

type textReportWriter struct{}

// NewTextReportWriter writes one "value: count" table per bucket kind followed by a summary.
func NewTextReportWriter() ReportWriter {
	return &textReportWriter{}
}

func (t *textReportWriter) Write(w io.Writer, report *models.AccessReport) error {
	bw := bufio.NewWriter(w)

	for _, kind := range bucketKinds {
		fmt.Fprintln(bw, columnHeaders[kind])
		for _, bucket := range report.Buckets(kind) {
			fmt.Fprintf(bw, "%d: %d\n", bucket.Value, bucket.Count)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintf(bw, "Report: %s\n", report.ReportID)
	fmt.Fprintf(bw, "Number of accesses: %d\n", report.NumberOfAccesses)
	fmt.Fprintf(bw, "Average accesses per month: %d\n", report.AverageAccessesPerMonth)
	fmt.Fprintf(bw, "Busiest hour: %d\n", report.BusiestHour)
	fmt.Fprintf(bw, "Quietest hour: %d\n", report.QuietestHour)
	fmt.Fprintf(bw, "Busiest two hours: %d and %d\n", report.BusiestDoubleHour, report.BusiestDoubleHour+1)
	fmt.Fprintf(bw, "Busiest day: %d\n", report.BusiestDay)
	fmt.Fprintf(bw, "Quietest day: %d\n", report.QuietestDay)
	fmt.Fprintf(bw, "Busiest month: %d\n", report.BusiestMonth)
	fmt.Fprintf(bw, "Quietest month: %d\n", report.QuietestMonth)

	return bw.Flush()
}
