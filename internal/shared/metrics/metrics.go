package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	promhttppkg "github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	FieldErrorCode = "error_code"
	FieldPass      = "pass"
	FieldKind      = "kind"
	FieldBucket    = "bucket"

	ValueNoError = ""

	Namespace      = "weblog_stats"
	SubIngestion   = "ingestion"
	SubAggregation = "aggregation"
	SubHTTP        = "http"
)

type (
	CounterOpts   = prometheus.CounterOpts
	GaugeOpts     = prometheus.GaugeOpts
	HistogramOpts = prometheus.HistogramOpts
)

// DefBuckets is a re-export of prometheus.DefBuckets.
var DefBuckets = prometheus.DefBuckets

// Vector constructors register with the default registry, which PromHTTP serves.
var (
	NewCounterVec   = promauto.NewCounterVec
	NewGaugeVec     = promauto.NewGaugeVec
	NewHistogramVec = promauto.NewHistogramVec
)

type promHTTP struct{}

// Handler serves the default registry in the Prometheus text format.
func (promHTTP) Handler() http.Handler {
	return promhttppkg.Handler()
}

// PromHTTP exposes promhttp as metrics.PromHTTP.Handler().
var PromHTTP = promHTTP{}
