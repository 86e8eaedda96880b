package httputil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func response(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func TestCheckResponse(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   bool
		retryable bool
		message   string
	}{
		{"ok", 200, "", false, false, ""},
		{"created", 201, "", false, false, ""},
		{"not found", 404, `{"message":"Board not found"}`, true, false, "Board not found"},
		{"plain body", 400, "bad\n", true, false, "bad"},
		{"server", 503, `{"message":"down"}`, true, true, "down"},
		{"throttled", 429, "", true, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckResponse(response(tt.status, tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if IsRetryable(err) != tt.retryable {
				t.Errorf("IsRetryable() = %v, want %v", IsRetryable(err), tt.retryable)
			}
			var se *StatusError
			if !errors.As(err, &se) || se.Status != tt.status || se.Message != tt.message {
				t.Errorf("StatusError = %+v, want %d %q", se, tt.status, tt.message)
			}
		})
	}
}

func TestRetry(t *testing.T) {
	ctx := context.Background()
	errBoom := errors.New("boom")
	tests := []struct {
		name      string
		fail      int
		retryable bool
		wantCalls int
		wantErr   error
	}{
		{"first try", 0, true, 1, nil},
		{"permanent", 9, false, 1, errBoom},
		{"recovers", 2, true, 3, nil},
		{"exhausted", 9, true, 3, errBoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Retry(ctx, 3, time.Millisecond, func() error {
				calls++
				if calls > tt.fail {
					return nil
				}
				if tt.retryable {
					return &RetryableError{Err: errBoom}
				}
				return errBoom
			})
			if calls != tt.wantCalls || err != tt.wantErr {
				t.Errorf("Retry() = %v after %d calls, want %v after %d", err, calls, tt.wantErr, tt.wantCalls)
			}
		})
	}
}

func TestRetryCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Retry(ctx, 3, time.Hour, func() error { return &RetryableError{Err: errors.New("x")} })
	if err != context.Canceled {
		t.Errorf("Retry() = %v, want %v", err, context.Canceled)
	}
}
