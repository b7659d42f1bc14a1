package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"weblog-stats/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Equal(t, "", appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewInvalidArgumentError(codeInvalidBucketKind, "bad kind", nil))
	assert.Equal(t, codeInvalidBucketKind, appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewInternalError("AGG_9000", nil))
	assert.Equal(t, "AGG_9000", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_TracksStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	appWriter.WriteHeader(http.StatusCreated)
	_, _ = appWriter.Write([]byte(`{"key":"reports/x.json"}`))

	assert.Equal(t, http.StatusCreated, appWriter.Status())
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, `{"key":"reports/x.json"}`, rr.Body.String())
}

func TestResponseOutcome(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRecorder()
	status, code := responseOutcome(plain)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "", code)

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	status, _ = responseOutcome(appWriter)
	assert.Equal(t, http.StatusOK, status, "nothing written defaults to 200")

	appWriter.SetServiceError(svcerrors.NewNotFoundError("AGG_1001", "no log files", nil))
	appWriter.WriteHeader(http.StatusNotFound)
	status, code = responseOutcome(appWriter)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "AGG_1001", code)
}
