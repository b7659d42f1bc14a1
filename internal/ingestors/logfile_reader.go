package ingestors

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"weblog-stats/internal/models"
	"weblog-stats/internal/shared/metrics"
)

// logFieldCount is the number of leading integer fields of a log line:
// year month day hour minute. Anything after them is ignored.
const logFieldCount = 5

type logfileReader struct {
	name       string
	r          io.Reader
	scanner    *bufio.Scanner
	lineNumber int

	pending    *models.LogEntry
	pendingErr error
	done       bool
}

// NewLogfileReader reads access log lines from r, one entry per line, e.g.
//
//	2015 06 01 23 45
//
// Lines are parsed on demand. Blank lines are skipped. Field values are not
// range checked. name identifies the log in errors. If r is an io.Closer,
// closing the reader closes it.
func NewLogfileReader(name string, r io.Reader) SourceCloser {
	return &logfileReader{
		name:    name,
		r:       r,
		scanner: bufio.NewScanner(r),
	}
}

func (r *logfileReader) HasNext() bool {
	if r.pending != nil || r.pendingErr != nil {
		return true
	}
	if r.done {
		return false
	}

	for r.scanner.Scan() {
		r.lineNumber++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}

		entry, err := ParseLogLine(line)
		if err != nil {
			svcErr := errMalformedLogLine(r.name, r.lineNumber, err)
			metricLinesReadTotal.WithLabelValues(svcErr.Code).Inc()
			r.pendingErr = svcErr
			return true
		}
		metricLinesReadTotal.WithLabelValues(metrics.ValueNoError).Inc()
		r.pending = &entry
		return true
	}

	r.done = true
	if err := r.scanner.Err(); err != nil {
		svcErr := errInternalLogfileReadFailed(r.name, err)
		metricLinesReadTotal.WithLabelValues(svcErr.Code).Inc()
		r.pendingErr = svcErr
		return true
	}
	return false
}

func (r *logfileReader) Next() (models.LogEntry, error) {
	if !r.HasNext() {
		return models.LogEntry{}, ErrSourceExhausted
	}
	if r.pendingErr != nil {
		err := r.pendingErr
		r.pendingErr = nil
		return models.LogEntry{}, err
	}
	entry := *r.pending
	r.pending = nil
	return entry, nil
}

func (r *logfileReader) Close() error {
	if closer, ok := r.r.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// ParseLogLine parses "year month day hour minute" into a LogEntry.
func ParseLogLine(line string) (models.LogEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < logFieldCount {
		return models.LogEntry{}, fmt.Errorf("expected %d fields, got %d", logFieldCount, len(fields))
	}

	var values [logFieldCount]int
	for i := range values {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return models.LogEntry{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		values[i] = v
	}

	return models.LogEntry{
		Year:   values[0],
		Month:  values[1],
		Day:    values[2],
		Hour:   values[3],
		Minute: values[4],
	}, nil
}
