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
		{"no cause", New(ErrCodeInvalidStyle, "unknown style %q", "neon"), `INVALID_STYLE: unknown style "neon"`},
		{"with cause", Wrap(ErrCodeInvalidConfig, errors.New("line 3: bad key"), "techradar.toml"), "INVALID_CONFIG: techradar.toml: line 3: bad key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidCatalog, cause, "decode json catalog")

	if !errors.Is(err, cause) || errors.Unwrap(err) != cause {
		t.Errorf("cause lost: %v", err)
	}
	if err.Message != "decode json catalog" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestCodeLookupThroughWrapping(t *testing.T) {
	notFound := New(ErrCodeFileNotFound, "catalog radar.json")
	tests := []struct {
		name    string
		err     error
		code    Code
		msg     string
		matches bool
	}{
		{"direct", notFound, ErrCodeFileNotFound, "catalog radar.json", true},
		{"fmt wrapped", fmt.Errorf("load: %w", notFound), ErrCodeFileNotFound, "catalog radar.json", true},
		{"outermost code wins", Wrap(ErrCodeInvalidCatalog, New(ErrCodeInvalidPath, "inner"), "outer"), ErrCodeInvalidCatalog, "outer", true},
		{"plain error", errors.New("boom"), "", "boom", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if got := Is(tt.err, ErrCodeFileNotFound) || Is(tt.err, ErrCodeInvalidCatalog); got != tt.matches {
				t.Errorf("Is() = %v, want %v", got, tt.matches)
			}
			if got := UserMessage(tt.err); got != tt.msg {
				t.Errorf("UserMessage() = %q, want %q", got, tt.msg)
			}
		})
	}

	if Is(nil, ErrCodeInternal) || GetCode(nil) != "" {
		t.Error("nil error should carry no code")
	}
}
