package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxIDLength bounds technology and dimension identifiers.
const maxIDLength = 128

// idRegex matches identifiers that are safe to use as file names. Detail
// files are looked up as <dir>/<id>.md, so an ID must never name a path.
var idRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ._+#-]*$`)

// ValidateID validates a technology identifier for use as a detail file name.
//
// The ID must:
//   - Be non-empty and at most 128 characters
//   - Start with a letter or digit
//   - Contain no path separators or traversal sequences
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "id cannot be empty")
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "id too long (max %d characters)", maxIDLength)
	}
	if strings.Contains(id, "..") {
		return New(ErrCodeInvalidInput, "id cannot contain path traversal sequences (..): %q", id)
	}
	if !idRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid id: %q", id)
	}
	return nil
}

// ValidatePath validates a relative path inside a details directory.
//
// The path must have:
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}
	return nil
}

// ValidateURL checks that a technology link uses http or https.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}
	return nil
}
