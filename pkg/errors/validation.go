package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds board and element ids accepted from outside the process.
const maxIDLength = 128

// ValidateID validates a board or element id received from a client or a
// file name. Ids end up in file paths and storage keys, so anything that could
// escape a directory or a key namespace is rejected.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters or whitespace
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "id cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidID, "id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidID, "id contains invalid characters")
		}
	}

	if strings.ContainsAny(id, `/\:`) || strings.Contains(id, "..") {
		return New(ErrCodeInvalidID, "id contains invalid characters: %q", id)
	}

	return nil
}

// ValidateFormat checks that format is one of the supported values.
func ValidateFormat(format string, supported []string) error {
	for _, s := range supported {
		if format == s {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (supported: %s)", format, strings.Join(supported, ", "))
}
