package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Modeling errors
const (
	// ErrCodeDateFormat indicates date text that does not match its declared format.
	ErrCodeDateFormat ErrorCode = "DATE_FORMAT"
	// ErrCodeInvalidFormat indicates a value of the wrong kind for its attribute.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeSchema indicates a malformed schema declaration.
	ErrCodeSchema ErrorCode = "SCHEMA"
)

// Dispatch errors
const (
	// ErrCodeAuthRequired indicates a guarded operation called without credentials.
	ErrCodeAuthRequired ErrorCode = "AUTH_REQUIRED"
	// ErrCodeLookup indicates a filter key or result shape missing from a response.
	ErrCodeLookup ErrorCode = "LOOKUP"
	// ErrCodeNotFound indicates a named item (schema, operation) was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// ErrCodeInternal indicates an unexpected internal failure.
const ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
