package errors

import (
	"strings"
	"unicode"
)

// ValidateStem validates an output filename stem.
// A stem must be a plain file name without extension tricks, since it is
// joined directly onto the output directory.
//
// Validation rules:
//   - Stem cannot be empty
//   - Maximum length of 200 characters
//   - No control characters
//   - No path separators or traversal sequences
//   - Cannot start with a dot
func ValidateStem(stem string) error {
	if stem == "" {
		return New(ErrCodeInvalidPath, "filename stem cannot be empty")
	}

	const maxStemLength = 200
	if len(stem) > maxStemLength {
		return New(ErrCodeInvalidPath, "filename stem too long (max %d characters)", maxStemLength)
	}

	for _, r := range stem {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "filename stem contains invalid control characters")
		}
	}

	if strings.ContainsAny(stem, "/\\") {
		return New(ErrCodeInvalidPath, "filename stem cannot contain path separators: %q", stem)
	}
	if strings.Contains(stem, "..") {
		return New(ErrCodeInvalidPath, "filename stem cannot contain path traversal sequences: %q", stem)
	}
	if strings.HasPrefix(stem, ".") {
		return New(ErrCodeInvalidPath, "filename stem cannot be a hidden file: %q", stem)
	}

	return nil
}
