package http

import (
	"weblog-stats/internal/shared/svcerrors"
)

const (
	codeInvalidBucketKind = "HTTP_1000"
	codeStatsRateLimited  = "HTTP_4290"
)

// errInvalidBucketKind returns an error when the {kind} path parameter is not hour, day or month.
func errInvalidBucketKind(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidBucketKind, "bucket kind must be one of hour, day, month", cause)
}

// errStatsRateLimited returns an error when the stats request rate exceeds the configured limit.
func errStatsRateLimited() *svcerrors.ServiceError {
	return svcerrors.NewRateLimitedError(codeStatsRateLimited, "too many stats requests, retry later")
}
