package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode classifies transport errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeAuth indicates rejected or missing credentials (401/403).
	ErrCodeAuth
	// ErrCodeNotFound indicates an unknown user, repository or path (404).
	ErrCodeNotFound
	// ErrCodeRateLimit indicates the request quota is spent (429).
	ErrCodeRateLimit
	// ErrCodeValidation indicates the API refused the request (other 4xx).
	ErrCodeValidation
	// ErrCodeServer indicates a server-side error (5xx).
	ErrCodeServer
	// ErrCodeDecode indicates a 2xx body that is not valid JSON.
	ErrCodeDecode
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeRateLimit:
		return "rate_limit"
	case ErrCodeValidation:
		return "validation"
	case ErrCodeServer:
		return "server"
	case ErrCodeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is a classified transport failure.
type Error struct {
	// StatusCode is the HTTP status, 0 for connection-level failures.
	StatusCode int
	Code       ErrorCode
	Message    string
	Retryable  bool
	// URL is the request URL with credentials removed.
	URL string
	// Body is the raw response body, if any.
	Body []byte
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("github2: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("github2: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Retryable: true, Err: err}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Retryable: true, Err: err}
}

// NewDecodeError creates an error for an unreadable success body.
func NewDecodeError(body []byte, err error) *Error {
	return &Error{Code: ErrCodeDecode, Message: err.Error(), Body: body, Err: err}
}

// ClassifyStatusCode converts an HTTP status into a typed error, or nil for
// 2xx. The message is taken from an {"error": ...} body when present.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	e := &Error{StatusCode: statusCode, Body: body, Message: apiMessage(statusCode, body)}
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		e.Code = ErrCodeAuth
	case statusCode == http.StatusNotFound:
		e.Code = ErrCodeNotFound
	case statusCode == http.StatusTooManyRequests:
		e.Code, e.Retryable = ErrCodeRateLimit, true
	case statusCode >= 400 && statusCode < 500:
		e.Code = ErrCodeValidation
	case statusCode >= 500:
		e.Code, e.Retryable = ErrCodeServer, true
	default:
		e.Code = ErrCodeServer
	}
	return e
}

// apiMessage extracts the API error text. v2 answers either
// {"error": "msg"} or {"error": [{"error": "msg"}, ...]}.
func apiMessage(statusCode int, body []byte) string {
	fallback := fmt.Sprintf("HTTP %d", statusCode)
	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if len(body) == 0 || json.Unmarshal(body, &payload) != nil || len(payload.Error) == 0 {
		return fallback
	}
	var single string
	if json.Unmarshal(payload.Error, &single) == nil && single != "" {
		return single
	}
	var list []struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(payload.Error, &list) == nil {
		msgs := make([]string, 0, len(list))
		for _, item := range list {
			if item.Error != "" {
				msgs = append(msgs, item.Error)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return fallback
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool { return hasCode(err, ErrCodeTimeout) }

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool { return hasCode(err, ErrCodeConnection) }

// IsAuth checks if the API rejected the credentials.
func IsAuth(err error) bool { return hasCode(err, ErrCodeAuth) }

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool { return hasCode(err, ErrCodeNotFound) }

// IsRateLimit checks if an error is a rate-limit error.
func IsRateLimit(err error) bool { return hasCode(err, ErrCodeRateLimit) }

// IsServerError checks if an error is a server error.
func IsServerError(err error) bool { return hasCode(err, ErrCodeServer) }

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
