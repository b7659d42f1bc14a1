package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"weblog-stats/internal/models"
	"weblog-stats/internal/shared/filestorages"
)

var (
	ErrReportAlreadyExists = errors.New("report already exists")
)

// ReportStore exports finished reports as JSON documents, one file per report id.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	// Put writes the report and returns its file key.
	Put(ctx context.Context, report *models.AccessReport) (string, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewReportStore(fileStorage filestorages.FileStorage, dir string) ReportStore {
	return &reportStore{fileStorage: fileStorage, dir: dir}
}

func (s *reportStore) Put(ctx context.Context, report *models.AccessReport) (string, error) {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	key := s.getKey(report.ReportID)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrReportAlreadyExists
		}
		return "", fmt.Errorf("failed to put report: %w", err)
	}
	return key, nil
}

func (s *reportStore) getKey(reportID string) string {
	return path.Join(s.dir, reportID+".json")
}
