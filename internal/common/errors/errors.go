// Package errors provides the standardized error taxonomy for the intake pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// ErrCodeFileMissing marks an input source that could not be opened;
	// the run continues with no data from that source.
	ErrCodeFileMissing ErrorCode = "FILE_MISSING"

	// ErrCodeRecordMalformed marks an arrivals line with fewer than six
	// comma-separated fields; the line is skipped.
	ErrCodeRecordMalformed ErrorCode = "RECORD_MALFORMED"

	// ErrCodeNumberUnparsable marks a non-numeric age or weight field.
	ErrCodeNumberUnparsable ErrorCode = "NUMBER_UNPARSABLE"

	// ErrCodeReportWriteFailed marks a report file that could not be opened
	// for appending; the write step is skipped.
	ErrCodeReportWriteFailed ErrorCode = "REPORT_WRITE_FAILED"

	// ErrCodeReportReadFailed marks a failed post-write read-back. This is
	// the only code that terminates the run with a non-zero status.
	ErrCodeReportReadFailed ErrorCode = "REPORT_READ_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code        ErrorCode `json:"code"`
	Message     string    `json:"message"`
	Details     string    `json:"details,omitempty"`
	Recoverable bool      `json:"recoverable"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewFileMissingError creates a recoverable missing-source error.
func NewFileMissingError(path string, err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeFileMissing,
		Message:     "input source could not be opened",
		Details:     fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewRecordMalformedError creates a recoverable malformed-record error.
func NewRecordMalformedError(line string, fieldCount int) *StandardError {
	return &StandardError{
		Code:        ErrCodeRecordMalformed,
		Message:     "arrivals record has fewer than 6 fields",
		Details:     fmt.Sprintf("fields: %d, line: %s", fieldCount, line),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewNumberUnparsableError creates a numeric-field parse error. Whether it is
// recoverable depends on the ingest strict_numbers setting, decided upstream.
func NewNumberUnparsableError(field, token string, err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeNumberUnparsable,
		Message:     fmt.Sprintf("%s field is not numeric", field),
		Details:     fmt.Sprintf("token: %q, error: %s", token, err.Error()),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewReportWriteFailedError creates a recoverable report-write error.
func NewReportWriteFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeReportWriteFailed,
		Message:     "report file could not be opened for appending",
		Details:     fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewReportReadFailedError creates the fatal read-back error.
func NewReportReadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeReportReadFailed,
		Message:     "report file could not be read back",
		Details:     fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

// IsRecoverable reports whether the run continues past an error code.
func IsRecoverable(code ErrorCode) bool {
	return code != ErrCodeReportReadFailed
}
