package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"bare", New(ErrCodeMalformedInput, "unexpected EOF at line %d", 3), "MALFORMED_INPUT: unexpected EOF at line 3"},
		{"wrapped", Wrap(ErrCodeIO, fs.ErrNotExist, "open %s", "g.graphml"), "IO: open g.graphml: file does not exist"},
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
	err := Wrap(ErrCodeIO, fs.ErrPermission, "open graph")
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is should see the wrapped cause")
	}
	if errors.Unwrap(err) != fs.ErrPermission {
		t.Error("Unwrap should return the cause")
	}
}

// viewerErr mimics a caller-side composite that wraps a coded error.
type viewerErr struct{ err error }

func (e viewerErr) Error() string { return "parse: " + e.err.Error() }
func (e viewerErr) Unwrap() error { return e.err }

func TestIs(t *testing.T) {
	display := Wrap(ErrCodeDisplay, New(ErrCodeIO, "terminal closed"), "run viewer")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", New(ErrCodeMalformedInput, "bad"), ErrCodeMalformedInput, true},
		{"other code", New(ErrCodeMalformedInput, "bad"), ErrCodeIO, false},
		{"outer of chain", display, ErrCodeDisplay, true},
		{"inner of chain", display, ErrCodeIO, true},
		{"behind composite", viewerErr{New(ErrCodeIO, "read")}, ErrCodeIO, true},
		{"behind fmt wrap", fmt.Errorf("load: %w", New(ErrCodeInvalidConfig, "x")), ErrCodeInvalidConfig, true},
		{"joined", errors.Join(errors.New("ctx"), New(ErrCodeInvalidFormat, "gif")), ErrCodeInvalidFormat, true},
		{"plain error", errors.New("boom"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeIO, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		err  error
		want Code
	}{
		{New(ErrCodeIO, "x"), ErrCodeIO},
		{Wrap(ErrCodeDisplay, New(ErrCodeIO, "x"), "y"), ErrCodeDisplay},
		{viewerErr{New(ErrCodeMalformedInput, "x")}, ErrCodeMalformedInput},
		{errors.New("plain"), ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := GetCode(tt.err); got != tt.want {
			t.Errorf("GetCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeInvalidConfig, "layout.margin must be in (0, 1]"), "layout.margin must be in (0, 1]"},
		{"nested codes", Wrap(ErrCodeDisplay, New(ErrCodeIO, "broken pipe"), "run viewer"), "run viewer: broken pipe"},
		{"plain cause", Wrap(ErrCodeIO, fs.ErrNotExist, "open g.graphml"), "open g.graphml: file does not exist"},
		{"composite", viewerErr{New(ErrCodeMalformedInput, "parse markup")}, "parse markup"},
		{"plain", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
