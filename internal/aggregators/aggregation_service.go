package aggregators

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"weblog-stats/internal/ingestors"
	"weblog-stats/internal/models"
	"weblog-stats/internal/shared/loggers"
	"weblog-stats/internal/shared/metrics"
	"weblog-stats/internal/shared/svcerrors"
	"weblog-stats/internal/shared/ulid"
	"weblog-stats/internal/stores"
)

const (
	passHourly  = "hourly"
	passDaily   = "daily"
	passMonthly = "monthly"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Aggregate reads the configured access logs once per pass and returns the resulting report.
	Aggregate(ctx context.Context) (*models.AccessReport, *svcerrors.ServiceError)
	// Export writes a report to the report store and returns its key.
	Export(ctx context.Context, report *models.AccessReport) (string, *svcerrors.ServiceError)
}

type aggregationService struct {
	logfileStore stores.LogfileStore
	reportStore  stores.ReportStore
	now          func() time.Time
}

func NewAggregationService(logfileStore stores.LogfileStore, reportStore stores.ReportStore) AggregationService {
	return &aggregationService{
		logfileStore: logfileStore,
		reportStore:  reportStore,
		now:          time.Now,
	}
}

func (s *aggregationService) Aggregate(ctx context.Context) (*models.AccessReport, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msg("started aggregating access logs")

	report, svcErr := s.aggregate(ctx)
	if svcErr != nil {
		metricReportGeneratedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	metricReportGeneratedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	publishLastReport(report)
	logger.Info().
		Str(loggers.FieldReportID, report.ReportID).
		Int(loggers.FieldEntryCount, report.NumberOfAccesses).
		Msg("access report generated")
	return report, nil
}

func (s *aggregationService) aggregate(ctx context.Context) (*models.AccessReport, *svcerrors.ServiceError) {
	aggregator := NewAccessAggregator(nil)

	// One fresh source per pass: sources are single-pass.
	passes := []struct {
		name    string
		analyze func() error
		counted func() int
	}{
		{name: passHourly, analyze: aggregator.AnalyzeHourly, counted: func() int { c := aggregator.HourCounts(); return sum(c[:]) }},
		{name: passDaily, analyze: aggregator.AnalyzeDaily, counted: func() int { c := aggregator.DayCounts(); return sum(c[:]) }},
		{name: passMonthly, analyze: aggregator.AnalyzeMonthly, counted: func() int { c := aggregator.MonthCounts(); return sum(c[:]) }},
	}

	for _, pass := range passes {
		if svcErr := s.runPassOnFreshSource(ctx, aggregator, pass.name, pass.analyze); svcErr != nil {
			return nil, svcErr
		}

		counted := pass.counted()
		metricEntriesAnalyzedTotal.WithLabelValues(pass.name).Add(float64(counted))
		loggers.Ctx(ctx).Debug().
			Str(loggers.FieldPass, pass.name).
			Int(loggers.FieldEntryCount, counted).
			Msg("analysis pass completed")
	}

	generatedAt := s.now().UTC()
	return &models.AccessReport{
		ReportID:                ulid.NewULIDAt(generatedAt),
		GeneratedAt:             generatedAt,
		HourCounts:              aggregator.HourCounts(),
		DayCounts:               aggregator.DayCounts(),
		MonthCounts:             aggregator.MonthCounts(),
		NumberOfAccesses:        aggregator.NumberOfAccesses(),
		AverageAccessesPerMonth: aggregator.AverageAccessesPerMonth(),
		BusiestHour:             aggregator.BusiestHour(),
		QuietestHour:            aggregator.QuietestHour(),
		BusiestDoubleHour:       aggregator.BusiestDoubleHour(),
		BusiestDay:              aggregator.BusiestDay(),
		QuietestDay:             aggregator.QuietestDay(),
		BusiestMonth:            aggregator.BusiestMonth(),
		QuietestMonth:           aggregator.QuietestMonth(),
	}, nil
}

func (s *aggregationService) Export(ctx context.Context, report *models.AccessReport) (string, *svcerrors.ServiceError) {
	key, err := s.reportStore.Put(ctx, report)
	if err != nil {
		return "", errInternalReportStoreFailed(err)
	}
	loggers.Ctx(ctx).Info().
		Str(loggers.FieldReportID, report.ReportID).
		Msg("access report exported to " + key)
	return key, nil
}

// runPassOnFreshSource opens a new source for one pass and closes it however the pass ends,
// including when runPass re-raises a panic.
func (s *aggregationService) runPassOnFreshSource(ctx context.Context, aggregator *AccessAggregator, name string, analyze func() error) *svcerrors.ServiceError {
	source, err := s.logfileStore.Open(ctx)
	if err != nil {
		if errors.Is(err, stores.ErrNoLogfiles) {
			return errNoLogfiles(err)
		}
		return errInternalLogSourceOpenFailed(err)
	}
	defer func() {
		if cerr := source.Close(); cerr != nil {
			loggers.Ctx(ctx).Warn().
				Err(cerr).
				Str(loggers.FieldPass, name).
				Msg("failed to close log source")
		}
	}()

	aggregator.SetSource(source)
	if err := runPass(analyze); err != nil {
		return passError(err)
	}
	return nil
}

// runPass turns the aggregator's index panic on an out of range entry into an error.
// Any other panic is re-raised.
func runPass(analyze func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(runtime.Error); ok && strings.Contains(re.Error(), "index out of range") {
				err = errEntryOutOfRange(re)
				return
			}
			panic(r)
		}
	}()
	return analyze()
}

func passError(err error) *svcerrors.ServiceError {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr
	}
	if errors.Is(err, ingestors.ErrSourceExhausted) {
		return errInternalSourceContractViolated(err)
	}
	return svcerrors.NewInternalErrorUndefined(fmt.Errorf("analysisPassFailed: %w", err))
}
