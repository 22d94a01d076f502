package transport

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTimeout, "timeout"},
		{ErrCodeConnection, "connection"},
		{ErrCodeAuth, "auth"},
		{ErrCodeNotFound, "not_found"},
		{ErrCodeRateLimit, "rate_limit"},
		{ErrCodeValidation, "validation"},
		{ErrCodeServer, "server"},
		{ErrCodeDecode, "decode"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	e := &Error{StatusCode: 404, Code: ErrCodeNotFound, Message: "Not Found"}
	if got, want := e.Error(), "github2: not_found (HTTP 404): Not Found"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	e2 := &Error{Code: ErrCodeConnection, Message: "connection refused"}
	if got, want := e2.Error(), "github2: connection: connection refused"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("dial tcp: refused")
	err := NewConnectionError(inner)
	if !errors.Is(err, inner) {
		t.Error("expected the cause to be reachable")
	}
}

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		code    int
		wantNil bool
		errCode ErrorCode
		retry   bool
	}{
		{200, true, 0, false},
		{204, true, 0, false},
		{401, false, ErrCodeAuth, false},
		{403, false, ErrCodeAuth, false},
		{404, false, ErrCodeNotFound, false},
		{422, false, ErrCodeValidation, false},
		{429, false, ErrCodeRateLimit, true},
		{500, false, ErrCodeServer, true},
		{503, false, ErrCodeServer, true},
		{302, false, ErrCodeServer, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("HTTP_%d", tt.code), func(t *testing.T) {
			err := ClassifyStatusCode(tt.code, nil)
			if tt.wantNil {
				if err != nil {
					t.Errorf("expected nil, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Code != tt.errCode {
				t.Errorf("code = %v, want %v", err.Code, tt.errCode)
			}
			if err.Retryable != tt.retry {
				t.Errorf("retryable = %v, want %v", err.Retryable, tt.retry)
			}
		})
	}
}

func TestAPIMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string", `{"error":"Not Found"}`, "Not Found"},
		{"list", `{"error":[{"error":"a"},{"error":"b"}]}`, "a; b"},
		{"empty list", `{"error":[]}`, "HTTP 400"},
		{"no error key", `{"message":"x"}`, "HTTP 400"},
		{"not json", `<html>`, "HTTP 400"},
		{"empty", ``, "HTTP 400"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apiMessage(400, []byte(tt.body)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ClassifyStatusCode(429, nil))
	if !IsRateLimit(wrapped) || !IsRetryable(wrapped) {
		t.Error("expected wrapped rate limit to be detected")
	}
	if IsTimeout(wrapped) || IsAuth(wrapped) || IsNotFound(wrapped) || IsServerError(wrapped) || IsConnection(wrapped) {
		t.Error("unexpected predicate match")
	}
	if !IsTimeout(NewTimeoutError(errors.New("slow"))) {
		t.Error("expected timeout")
	}
	if IsRetryable(errors.New("plain")) {
		t.Error("plain errors are not retryable")
	}
}
