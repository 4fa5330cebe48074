package errors

import (
	"testing"
)

func TestValidateInputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "graph.graphml", false},
		{"valid nested", "testdata/abc.xml", false},
		{"valid absolute", "/tmp/g.graphml", false},
		{"valid with spaces", "my graph.xml", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", string(make([]byte, 5000)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateInputPath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"svg", "png", "dot"}
	for _, f := range allowed {
		if err := ValidateFormat(f, allowed...); err != nil {
			t.Errorf("ValidateFormat(%q) = %v, want nil", f, err)
		}
	}

	err := ValidateFormat("pdf", allowed...)
	if err == nil {
		t.Fatal("ValidateFormat(pdf) = nil, want error")
	}
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
	}
	if want := "invalid format: pdf (must be one of svg, png, dot)"; UserMessage(err) != want {
		t.Errorf("UserMessage() = %q, want %q", UserMessage(err), want)
	}
}
