package ingestors

import (
	"errors"
	"io"

	"weblog-stats/internal/models"
)

// ErrSourceExhausted is returned by Next when HasNext is false.
var ErrSourceExhausted = errors.New("entry source exhausted")

// EntrySource is a lazy, single-pass, finite sequence of log entries.
// Once drained it stays empty: analysing the same data again needs a fresh source.
//
//go:generate mockgen -source=entry_source.go -destination=./mocks/entry_source_mock.go -package=mocks
type EntrySource interface {
	HasNext() bool
	// Next returns the next entry, ErrSourceExhausted past the end, or the
	// error met while reading the entry (e.g. a malformed log line).
	Next() (models.LogEntry, error)
}

// SourceCloser is an EntrySource holding open resources.
type SourceCloser interface {
	EntrySource
	io.Closer
}

type emptySource struct{}

// NewEmptySource returns a source without entries.
func NewEmptySource() EntrySource {
	return emptySource{}
}

func (emptySource) HasNext() bool { return false }

func (emptySource) Next() (models.LogEntry, error) {
	return models.LogEntry{}, ErrSourceExhausted
}

type sliceSource struct {
	entries []models.LogEntry
	pos     int
}

// NewSliceSource returns a source yielding entries in order, once.
func NewSliceSource(entries []models.LogEntry) EntrySource {
	return &sliceSource{entries: entries}
}

func (s *sliceSource) HasNext() bool {
	return s.pos < len(s.entries)
}

func (s *sliceSource) Next() (models.LogEntry, error) {
	if !s.HasNext() {
		return models.LogEntry{}, ErrSourceExhausted
	}
	entry := s.entries[s.pos]
	s.pos++
	return entry, nil
}

type concatSource struct {
	sources []EntrySource
	current int
}

// NewConcatSource chains sources: all entries of the first, then the second, and so on.
// Close closes every chained source that is an io.Closer.
func NewConcatSource(sources ...EntrySource) SourceCloser {
	return &concatSource{sources: sources}
}

func (s *concatSource) HasNext() bool {
	for s.current < len(s.sources) {
		if s.sources[s.current].HasNext() {
			return true
		}
		s.current++
	}
	return false
}

func (s *concatSource) Next() (models.LogEntry, error) {
	if !s.HasNext() {
		return models.LogEntry{}, ErrSourceExhausted
	}
	return s.sources[s.current].Next()
}

func (s *concatSource) Close() error {
	var errs []error
	for _, source := range s.sources {
		if closer, ok := source.(io.Closer); ok {
			errs = append(errs, closer.Close())
		}
	}
	return errors.Join(errs...)
}
