// Package domainerrors defines the error taxonomy shared by services and
// transport layers. Services return coded errors; handlers translate codes to
// HTTP statuses without inspecting message text.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error for transport mapping and client branching.
type Code string

const (
	// CodeValidation marks malformed input or a violated cross-field
	// invariant. Carries a per-field detail list.
	CodeValidation Code = "validation_error"
	// CodeUnauthorized marks a missing or invalid credential.
	CodeUnauthorized Code = "unauthorized"
	// CodeForbidden marks a failed capability check. The message is generic
	// so it does not reveal whether the target exists.
	CodeForbidden Code = "forbidden"
	// CodeNotFound marks a missing record.
	CodeNotFound Code = "not_found"
	// CodeConflict marks an operation that was already performed, distinct
	// from validation so clients can branch on "already done" vs "bad input".
	CodeConflict Code = "conflict"
	// CodeUnavailable marks a server-side configuration gap, e.g. an empty
	// consequence pool. Not retried automatically.
	CodeUnavailable Code = "unavailable"
	// CodeBadRequest marks an unparseable request body.
	CodeBadRequest Code = "bad_request"
	// CodeInternal marks everything else.
	CodeInternal Code = "internal"
)

// FieldError pins a validation failure to the field that caused it.
type FieldError struct {
	Field  string `json:"loc"`
	Detail string `json:"detail"`
}

// Error is the coded error type returned by domain services.
type Error struct {
	Code    Code
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a coded error with a human-readable message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// NewValidation builds a validation error from per-field details. The message
// is derived from the first field so logs stay readable.
func NewValidation(fields ...FieldError) *Error {
	msg := "validation failed"
	if len(fields) > 0 {
		msg = fields[0].Detail
	}
	return &Error{Code: CodeValidation, Message: msg, Fields: fields}
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from an error chain, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// FieldsOf extracts the validation field list, if any.
func FieldsOf(err error) []FieldError {
	var de *Error
	if errors.As(err, &de) {
		return de.Fields
	}
	return nil
}

// ToHTTPStatus maps an error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusInternalServerError
	case CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
