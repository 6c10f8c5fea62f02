package assist

import (
	"regexp"
	"strings"
)

// Input length bounds, measured on the trimmed text in runes.
const (
	MinInputLength = 2
	MaxInputLength = 500
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ValidateInput checks the raw free-text input before extraction.
// Rejects missing text and trimmed lengths outside [MinInputLength, MaxInputLength].
func ValidateInput(text string) error {
	if text == "" {
		return ErrTextRequired
	}

	trimmed := []rune(strings.TrimSpace(text))
	if len(trimmed) < MinInputLength {
		return ErrTextTooShort
	}
	if len(trimmed) > MaxInputLength {
		return ErrTextTooLong
	}
	return nil
}

// PreprocessInput trims leading/trailing whitespace and collapses internal
// whitespace runs to single spaces. Case is left untouched; the domain is
// not case-sensitive.
func PreprocessInput(text string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
}
