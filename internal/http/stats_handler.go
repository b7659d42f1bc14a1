package http

import (
	"encoding/json"
	"net/http"

	"weblog-stats/internal/aggregators"
	"weblog-stats/internal/models"
	"weblog-stats/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
)

const paramBucketKind = "kind"

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// BucketStatsResponse is the body of GET /stats/{kind}.
type BucketStatsResponse struct {
	ReportID string               `json:"reportId"`
	Kind     models.BucketKind    `json:"kind"`
	Buckets  []models.BucketCount `json:"buckets"`
}

// ExportReportResponse is the body of POST /reports.
type ExportReportResponse struct {
	ReportID string `json:"reportId"`
	Key      string `json:"key"`
}

type getStatsHandler struct {
	aggregationService aggregators.AggregationService
}

func NewGetStatsHandler(aggregationService aggregators.AggregationService) AppHttpHandler {
	return &getStatsHandler{aggregationService: aggregationService}
}

// Handle processes GET /stats requests.
func (h *getStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, svcErr := h.aggregationService.Aggregate(r.Context())
	if svcErr != nil {
		return svcErr
	}

	w.Header().Set(headerReportID, report.ReportID)
	return writeJSON(w, r, http.StatusOK, report)
}

type getBucketStatsHandler struct {
	aggregationService aggregators.AggregationService
}

func NewGetBucketStatsHandler(aggregationService aggregators.AggregationService) AppHttpHandler {
	return &getBucketStatsHandler{aggregationService: aggregationService}
}

// Handle processes GET /stats/{kind} requests.
func (h *getBucketStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	kind, err := models.NewBucketKindFromString(chi.URLParam(r, paramBucketKind))
	if err != nil {
		return errInvalidBucketKind(err)
	}

	report, svcErr := h.aggregationService.Aggregate(r.Context())
	if svcErr != nil {
		return svcErr
	}

	w.Header().Set(headerReportID, report.ReportID)
	return writeJSON(w, r, http.StatusOK, BucketStatsResponse{
		ReportID: report.ReportID,
		Kind:     kind,
		Buckets:  report.Buckets(kind),
	})
}

type exportReportHandler struct {
	aggregationService aggregators.AggregationService
}

func NewExportReportHandler(aggregationService aggregators.AggregationService) AppHttpHandler {
	return &exportReportHandler{aggregationService: aggregationService}
}

// Handle processes POST /reports requests: a fresh report is generated and written to the report store.
func (h *exportReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, svcErr := h.aggregationService.Aggregate(r.Context())
	if svcErr != nil {
		return svcErr
	}

	key, svcErr := h.aggregationService.Export(r.Context(), report)
	if svcErr != nil {
		return svcErr
	}

	w.Header().Set(headerReportID, report.ReportID)
	return writeJSON(w, r, http.StatusCreated, ExportReportResponse{
		ReportID: report.ReportID,
		Key:      key,
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) error {
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// headers are already sent, nothing left to report to the client
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("failed to write response body")
	}
	return nil
}
