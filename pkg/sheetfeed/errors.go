package sheetfeed

import (
	"errors"
	"fmt"
)

// Argument validation messages. Callers may match on them.
const (
	msgInvalidArguments  = "Invalid arguments."
	msgKeyMissing        = "Spreadsheet key not provided."
	msgWorksheetMissing  = "Worksheet not specified."
	msgAccessDenied      = "No access to that spreadsheet, check your auth."
	msgInvalidCredential = "Invalid authorization key."
	msgMissingResponse   = "Missing response."
)

// InvalidArgumentError reports caller misuse detected before any request.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return e.Reason
}

// InvalidCredentialError indicates the feed rejected the credential (HTTP 401).
type InvalidCredentialError struct{}

func (e *InvalidCredentialError) Error() string {
	return msgInvalidCredential
}

// AccessDeniedError indicates the spreadsheet is not reachable with the given
// credential: the feed redirected, the transport rejected a cross-origin
// request, or the response lacked the fields of a readable spreadsheet.
type AccessDeniedError struct {
	Err error
}

func (e *AccessDeniedError) Error() string {
	return msgAccessDenied
}

func (e *AccessDeniedError) Unwrap() error {
	return e.Err
}

// HTTPError carries a non-success status returned by the feed.
type HTTPError struct {
	StatusCode int
	Reason     string
}

func (e *HTTPError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("HTTP error %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Reason)
}

// TransportError indicates no usable response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return msgMissingResponse
	}
	return fmt.Sprintf("execute request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates the response body was not well-formed for the
// requested format.
type DecodeError struct {
	Format Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s feed: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsInvalidArgument checks if the error is an argument validation error
func IsInvalidArgument(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

// IsInvalidCredential checks if the error is a rejected credential error
func IsInvalidCredential(err error) bool {
	var e *InvalidCredentialError
	return errors.As(err, &e)
}

// IsAccessDenied checks if the error is an access denied error
func IsAccessDenied(err error) bool {
	var e *AccessDeniedError
	return errors.As(err, &e)
}

// IsHTTPError checks if the error is an HTTP status error
func IsHTTPError(err error) bool {
	var e *HTTPError
	return errors.As(err, &e)
}

// IsTransportError checks if the error is a transport error
func IsTransportError(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// IsDecodeError checks if the error is a decode error
func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}
