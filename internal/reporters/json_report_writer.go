package reporters

import (
	"encoding/json"
	"io"

	"weblog-stats/internal/models"
)

type jsonReportWriter struct{}

func NewJSONReportWriter() ReportWriter {
	return &jsonReportWriter{}
}

func (j *jsonReportWriter) Write(w io.Writer, report *models.AccessReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
