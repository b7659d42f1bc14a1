package http

import (
	"net/http"

	"weblog-stats/internal/aggregators"
	"weblog-stats/internal/shared/loggers"
	"weblog-stats/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// RouterOptions tunes the routes that run a full aggregation per request.
type RouterOptions struct {
	// StatsRateLimit is the allowed stats requests per second; 0 means unlimited.
	StatsRateLimit float64
	StatsBurst     int
}

// NewRouter creates and configures the HTTP router.
func NewRouter(aggregationService aggregators.AggregationService, httpLogger loggers.Logger, opts RouterOptions) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Group(func(r chi.Router) {
		if opts.StatsRateLimit > 0 {
			r.Use(mwRateLimit(rate.NewLimiter(rate.Limit(opts.StatsRateLimit), max(opts.StatsBurst, 1))))
		}
		r.Get("/stats", errorHandlingAdapter(NewGetStatsHandler(aggregationService)))
		r.Get("/stats/{"+paramBucketKind+"}", errorHandlingAdapter(NewGetBucketStatsHandler(aggregationService)))
		r.Post("/reports", errorHandlingAdapter(NewExportReportHandler(aggregationService)))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
