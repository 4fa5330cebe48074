package errors

import (
	"strings"
	"unicode"
)

// ValidateInputPath validates a user-supplied input file path.
//
// The checks are syntactic only; whether the file exists is left to the
// parser, which reports a missing file as IO.
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "input path cannot be empty")
	}

	if len(path) > 4096 {
		return New(ErrCodeInvalidPath, "input path too long (max 4096 characters)")
	}

	for _, r := range path {
		if r == 0 || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "input path contains invalid control characters")
		}
	}

	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
}
