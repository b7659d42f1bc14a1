package stores

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"weblog-stats/internal/ingestors"
	"weblog-stats/internal/shared/filestorages"

	"github.com/gobwas/glob"
)

var (
	ErrNoLogfiles            = errors.New("no log files match the input pattern")
	ErrLogfileAlreadyExists  = errors.New("log file already exists")
	ErrInvalidLogfilePattern = errors.New("invalid log file pattern")
)

// LogfileStore resolves the access logs selected by a glob pattern over file storage keys.
// "*" does not cross "/", "**" does.
//
// Every Open returns a fresh source over all matched files in key order, so each
// analysis pass can read the whole input again.
//
//go:generate mockgen -source=logfile_store.go -destination=./mocks/logfile_store_mock.go -package=mocks
type LogfileStore interface {
	Keys(ctx context.Context) ([]string, error)
	Open(ctx context.Context) (ingestors.SourceCloser, error)
	// Put stores a new log file; it never overwrites an existing one.
	Put(ctx context.Context, key string, r io.Reader) error
}

type logfileStore struct {
	fileStorage filestorages.FileStorage
	pattern     glob.Glob
	prefix      string
}

func NewLogfileStore(fileStorage filestorages.FileStorage, pattern string) (LogfileStore, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidLogfilePattern, pattern, err)
	}
	return &logfileStore{
		fileStorage: fileStorage,
		pattern:     g,
		prefix:      staticPrefix(pattern),
	}, nil
}

func (s *logfileStore) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.fileStorage.List(ctx, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list log files: %w", err)
	}

	var matched []string
	for _, key := range keys {
		if s.pattern.Match(key) {
			matched = append(matched, key)
		}
	}
	if len(matched) == 0 {
		return nil, ErrNoLogfiles
	}
	return matched, nil
}

func (s *logfileStore) Open(ctx context.Context) (ingestors.SourceCloser, error) {
	keys, err := s.Keys(ctx)
	if err != nil {
		return nil, err
	}

	sources := make([]ingestors.EntrySource, 0, len(keys))
	for _, key := range keys {
		readCloser, err := s.fileStorage.Get(ctx, key)
		if err != nil {
			_ = ingestors.NewConcatSource(sources...).Close()
			return nil, fmt.Errorf("failed to open log file %q: %w", key, err)
		}
		sources = append(sources, ingestors.NewLogfileReader(key, readCloser))
	}
	return ingestors.NewConcatSource(sources...), nil
}

func (s *logfileStore) Put(ctx context.Context, key string, r io.Reader) error {
	_, err := s.fileStorage.Put(ctx, key, r, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrLogfileAlreadyExists
		}
		return fmt.Errorf("failed to put log file: %w", err)
	}
	return nil
}

// staticPrefix returns the directory part of pattern before its first glob
// meta character, e.g. "logs/2015/*.txt" -> "logs/2015".
func staticPrefix(pattern string) string {
	static := pattern
	if i := strings.IndexAny(pattern, `*?[{\`); i >= 0 {
		static = pattern[:i]
	}
	if i := strings.LastIndex(static, "/"); i >= 0 {
		return static[:i]
	}
	return ""
}
