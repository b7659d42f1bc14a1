package aggregators

import (
	"fmt"

	"weblog-stats/internal/shared/svcerrors"
)

const (
	codeEntryOutOfRange = "AGG_1000"
	codeNoLogfiles      = "AGG_1001"

	codeInternalLogSourceOpenFailed    = "AGG_9000"
	codeInternalReportStoreFailed      = "AGG_9001"
	codeInternalSourceContractViolated = "AGG_9002"
)

// errEntryOutOfRange returns an error when a log entry's hour, day or month has no bucket.
func errEntryOutOfRange(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeEntryOutOfRange, "log entry out of bucket range", cause)
}

// errNoLogfiles returns an error when the input pattern matches no log file.
func errNoLogfiles(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoLogfiles, "no log files match the input pattern", cause)
}

// errInternalLogSourceOpenFailed returns an error when the log files cannot be opened.
func errInternalLogSourceOpenFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogSourceOpenFailed, fmt.Errorf("logSourceOpenFailed: %w", cause))
}

// errInternalReportStoreFailed returns an error when a report cannot be exported.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

// errInternalSourceContractViolated returns an error when a source yields nothing after reporting a next entry.
func errInternalSourceContractViolated(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSourceContractViolated, fmt.Errorf("sourceContractViolated: %w", cause))
}
