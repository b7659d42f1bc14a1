package ingestors

import (
	"fmt"

	"weblog-stats/internal/shared/svcerrors"
)

const (
	codeMalformedLogLine = "ING_1000"

	codeInternalLogfileReadFailed = "ING_9000"
)

// errMalformedLogLine returns an error for a log line that does not hold the expected integer fields.
func errMalformedLogLine(name string, lineNumber int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedLogLine,
		fmt.Sprintf("malformed log line %d in %s", lineNumber, name), cause)
}

// errInternalLogfileReadFailed returns an error when reading the underlying log fails.
func errInternalLogfileReadFailed(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogfileReadFailed, fmt.Errorf("logfileReadFailed %s: %w", name, cause))
}
