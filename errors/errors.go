package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type of the github2 packages.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Domain constructors ---

// DateFormat creates an error for date text rejected by the named format.
func DateFormat(format, value string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeDateFormat,
		Message: fmt.Sprintf("%q is not a valid %s date", value, format),
		Details: map[string]any{"format": format, "value": value},
		Cause:   cause,
	}
}

// AuthRequired creates an error for a guarded operation invoked without a
// session. The operation name is embedded in the message.
func AuthRequired(operation string) *AppError {
	return &AppError{
		Code:    ErrCodeAuthRequired,
		Message: fmt.Sprintf("%q requires an authenticated session", operation),
		Details: map[string]any{"operation": operation},
	}
}

// Lookup creates an error for a key absent from a response.
func Lookup(key string) *AppError {
	return &AppError{
		Code:    ErrCodeLookup,
		Message: fmt.Sprintf("key %q not present in response", key),
		Details: map[string]any{"key": key},
	}
}

// Shape creates an error for a response that is not the expected kind of value.
func Shape(expected string, got any) *AppError {
	return &AppError{
		Code:    ErrCodeLookup,
		Message: fmt.Sprintf("expected %s in response, got %T", expected, got),
		Details: map[string]any{"expected": expected},
	}
}

// NotFound creates an error for a named item that is not registered.
func NotFound(kind, name string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s %q not found", kind, name),
		Details: map[string]any{"kind": kind, "name": name},
	}
}

// Schema creates an error for a malformed schema declaration.
func Schema(name, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeSchema,
		Message: fmt.Sprintf("schema %s: %s", name, reason),
		Details: map[string]any{"schema": name},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// InvalidFormat creates a new AppError for a value of the wrong kind.
func InvalidFormat(field, expectedFormat string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidFormat, Message: fmt.Sprintf("Invalid format for %s. Expected: %s", field, expectedFormat),
		Details: map[string]any{"field": field, "expected_format": expectedFormat},
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Cause: cause,
	}
}

// Wrap converts any error to an AppError. Nil stays nil, AppErrors anywhere
// in the chain are returned as is, everything else becomes Internal.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}

// --- Predicates ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsDateFormat reports whether err is a date format error.
func IsDateFormat(err error) bool { return HasCode(err, ErrCodeDateFormat) }

// IsAuthRequired reports whether err is a missing-credentials error.
func IsAuthRequired(err error) bool { return HasCode(err, ErrCodeAuthRequired) }

// IsLookup reports whether err is a response lookup error.
func IsLookup(err error) bool { return HasCode(err, ErrCodeLookup) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return HasCode(err, ErrCodeNotFound) }
