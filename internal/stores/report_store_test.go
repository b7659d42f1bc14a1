package stores

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"weblog-stats/internal/models"
	"weblog-stats/internal/shared/filestorages"
	"weblog-stats/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReport() *models.AccessReport {
	report := &models.AccessReport{
		ReportID:         "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		GeneratedAt:      time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC),
		NumberOfAccesses: 3,
		BusiestHour:      18,
		BusiestDay:       28,
		BusiestMonth:     12,
	}
	report.HourCounts[18] = 3
	report.DayCounts[27] = 3
	report.MonthCounts[11] = 3
	return report
}

func TestReportStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage, "reports")

	ctx := context.Background()
	report := newTestReport()
	expectedKey := "reports/01ARZ3NDEKTSV4RRFFQ69G5FAV.json"
	expectedJSON, _ := json.Marshal(report)

	mockFileStorage.EXPECT().
		Put(ctx, expectedKey, gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	key, err := store.Put(ctx, report)
	require.NoError(t, err)
	assert.Equal(t, expectedKey, key)
}

func TestReportStore_Put_AlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage, "reports")

	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, filestorages.ErrFileAlreadyExists)

	_, err := store.Put(context.Background(), newTestReport())
	assert.ErrorIs(t, err, ErrReportAlreadyExists)
}

func TestReportStore_Put_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage, "reports")

	putErr := errors.New("no space left")
	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, putErr)

	_, err := store.Put(context.Background(), newTestReport())
	assert.ErrorIs(t, err, putErr)
	assert.Contains(t, err.Error(), "failed to put report")
}

func TestReportStore_Put_WritesReadableJSON(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	storage, err := filestorages.NewFileStorage(rootDir)
	require.NoError(t, err)
	store := NewReportStore(storage, "exports/reports")

	report := newTestReport()
	key, err := store.Put(context.Background(), report)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(rootDir, filepath.FromSlash(key)))
	require.NoError(t, err)

	var decoded models.AccessReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *report, decoded)
}
