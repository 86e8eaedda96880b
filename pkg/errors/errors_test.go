package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  New(ErrCodeUnknownElementType, "unknown element type %q", "arrow"),
			want: `UNKNOWN_ELEMENT_TYPE: unknown element type "arrow"`,
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeStorage, errors.New("disk full"), "save board %s", "b1"),
			want: "STORAGE_ERROR: save board b1: disk full",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeStorage, cause, "list boards")

	if got := errors.Unwrap(err); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	missing := New(ErrCodeBoardNotFound, "board b1 not found")
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"same code", missing, ErrCodeBoardNotFound, true},
		{"other code", missing, ErrCodeIconNotFound, false},
		{"fmt wrapped", fmt.Errorf("open: %w", missing), ErrCodeBoardNotFound, true},
		{"outer code wins", Wrap(ErrCodeStorage, missing, "load"), ErrCodeStorage, true},
		{"inner code hidden", Wrap(ErrCodeStorage, missing, "load"), ErrCodeBoardNotFound, false},
		{"plain error", errors.New("boom"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInvalidInput, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"coded", New(ErrCodeInvalidDocument, "elements must be an array"), ErrCodeInvalidDocument},
		{"fmt wrapped", fmt.Errorf("import: %w", New(ErrCodeUnauthorized, "bad token")), ErrCodeUnauthorized},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeIconNotFound, "icon %q not found", "rocket"), `icon "rocket" not found`},
		{"wrapped keeps message", Wrap(ErrCodeStorage, errors.New("eof"), "read board"), "read board"},
		{"plain", errors.New("plain error"), "plain error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
