package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Limits applied by ValidateWords to untrusted input (HTTP requests).
const (
	MaxWordLength = 256
	MaxWordCount  = 100_000
)

// ValidateWord checks a single word token.
//
// A word must be non-empty valid UTF-8, no longer than MaxWordLength bytes and
// free of whitespace and control characters. The chaining core tolerates
// anything, but words read from files are already whitespace-split so callers
// that accept raw lists should hold them to the same shape.
func ValidateWord(word string) error {
	if word == "" {
		return New(ErrCodeInvalidInput, "word cannot be empty")
	}
	if len(word) > MaxWordLength {
		return New(ErrCodeInvalidInput, "word too long (max %d bytes)", MaxWordLength)
	}
	if !utf8.ValidString(word) {
		return New(ErrCodeInvalidInput, "word %q is not valid UTF-8", word)
	}
	for _, r := range word {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "word %q contains whitespace or control characters", word)
		}
	}
	return nil
}

// ValidateWords checks every word in the list and the list length.
// An empty list is valid: it chains to an empty result.
func ValidateWords(words []string) error {
	if len(words) > MaxWordCount {
		return New(ErrCodeInvalidInput, "too many words (max %d)", MaxWordCount)
	}
	for i, w := range words {
		if err := ValidateWord(w); err != nil {
			return Wrap(ErrCodeInvalidInput, err, "word %d: %s", i, UserMessage(err))
		}
	}
	return nil
}

// ValidatePath validates a local file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
