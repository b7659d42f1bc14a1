package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"weblog-stats/internal/aggregators"
	internalhttp "weblog-stats/internal/http"
	"weblog-stats/internal/ingestors"
	"weblog-stats/internal/reporters"
	"weblog-stats/internal/shared/configs"
	"weblog-stats/internal/shared/filestorages"
	"weblog-stats/internal/shared/loggers"
	"weblog-stats/internal/shared/ulid"
	"weblog-stats/internal/stores"
)

const appName = "weblog-stats"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	logCloser io.Closer
	server    *http.Server

	logfileStore       stores.LogfileStore
	aggregationService aggregators.AggregationService
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, logCloser, err := loggers.NewWithFile(config.Log.Level, loggers.FileOptions{
		Path:       config.Log.File,
		MaxSizeMB:  config.Log.MaxSizeMB,
		MaxBackups: config.Log.MaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	logfileStore, err := stores.NewLogfileStore(fileStorage, config.Input.Pattern)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("failed to initialize log file store: %w", err)
	}
	reportStore := stores.NewReportStore(fileStorage, config.Report.Dir)
	aggregationService := aggregators.NewAggregationService(logfileStore, reportStore)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(aggregationService, httpLogger, internalhttp.RouterOptions{
		StatsRateLimit: config.Server.StatsRateLimit,
		StatsBurst:     config.Server.StatsBurst,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:             config,
		appLogger:          appLogger,
		logCloser:          logCloser,
		server:             server,
		logfileStore:       logfileStore,
		aggregationService: aggregationService,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s on port %d (log_level=%s, file_storage_root_dir=%s, input_pattern=%s)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Input.Pattern)

	return app.server.ListenAndServe()
}

// Shutdown gracefully stops the server and releases the log file.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return app.Close()
}

// Close releases the log file, if one is configured.
func (app *App) Close() error {
	return app.logCloser.Close()
}

// Report aggregates the configured access logs once and renders the report to w.
// With export set the report is also written to the report store.
func (app *App) Report(ctx context.Context, w io.Writer, format string, export bool) error {
	ctx = app.runContext(ctx, "report")

	writer, err := reporters.NewReportWriter(format, app.config.Report.ChartHeight)
	if err != nil {
		return err
	}

	report, svcErr := app.aggregationService.Aggregate(ctx)
	if svcErr != nil {
		return svcErr
	}

	if err := writer.Write(w, report); err != nil {
		return fmt.Errorf("failed to write %s report: %w", format, err)
	}
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldReportID, report.ReportID).
		Str(loggers.FieldReportFormat, format).
		Msg("access report written")

	if export {
		if _, svcErr := app.aggregationService.Export(ctx, report); svcErr != nil {
			return svcErr
		}
	}
	return nil
}

// PrintData writes every entry of the configured access logs to w, one normalized line each,
// in the order a single analysis pass reads them.
func (app *App) PrintData(ctx context.Context, w io.Writer) error {
	ctx = app.runContext(ctx, "print-data")

	source, err := app.logfileStore.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open access logs: %w", err)
	}
	defer func() {
		if cerr := source.Close(); cerr != nil {
			loggers.Ctx(ctx).Warn().Err(cerr).Msg("failed to close log source")
		}
	}()

	written, err := reporters.WriteEntries(w, source)
	if err != nil {
		return fmt.Errorf("failed to print access log entries: %w", err)
	}
	loggers.Ctx(ctx).Debug().
		Int(loggers.FieldEntryCount, written).
		Msg("access log entries printed")
	return nil
}

// Watch renders a report now and again after every change to the input log files, until ctx is done.
// Failed runs are logged and do not stop watching.
func (app *App) Watch(ctx context.Context, w io.Writer, format string) error {
	if _, err := reporters.NewReportWriter(format, app.config.Report.ChartHeight); err != nil {
		return err
	}

	watcher, err := stores.NewLogfileWatcher(
		app.config.FileStorage.RootDir,
		app.config.Input.Pattern,
		time.Duration(app.config.Input.WatchDebounceMs)*time.Millisecond,
	)
	if err != nil {
		return err
	}
	defer watcher.Close()

	logger := app.appLogger.With().Str(loggers.FieldComponent, "watch").Logger()
	logger.Info().Msgf("watching %s for changes", app.config.Input.Pattern)

	report := func() {
		if err := app.Report(ctx, w, format, false); err != nil {
			logger.Warn().Err(err).Msg("report run failed")
		}
	}

	report()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-watcher.Changes():
			if !ok {
				return nil
			}
			report()
		case err, ok := <-watcher.Errors():
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("log file watcher error")
		}
	}
}

// Generate writes a synthetic access log of n entries for year under key.
func (app *App) Generate(ctx context.Context, key string, n, year int, seed uint64) error {
	ctx = app.runContext(ctx, "generate")

	var buf bytes.Buffer
	if err := ingestors.NewLogfileCreator(year, seed).WriteLogfile(&buf, n); err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	if err := app.logfileStore.Put(ctx, key, &buf); err != nil {
		return err
	}

	loggers.Ctx(ctx).Info().
		Str(loggers.FieldLogfileKey, key).
		Int(loggers.FieldEntryCount, n).
		Msg("access log generated")
	return nil
}

func (app *App) runContext(ctx context.Context, component string) context.Context {
	return app.appLogger.With().
		Str(loggers.FieldComponent, component).
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger().WithContext(ctx)
}
