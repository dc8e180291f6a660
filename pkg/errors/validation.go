package errors

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// MaxWordLength bounds the length of a single tag word in runes.
const MaxWordLength = 64

// ValidateWord validates a tag word before it is measured and placed.
//
// The validation rules are intentionally conservative:
//   - No empty words
//   - No control characters or whitespace
//   - Maximum length of MaxWordLength runes
func ValidateWord(word string) error {
	if word == "" {
		return New(ErrCodeInvalidInput, "word cannot be empty")
	}

	if n := utf8.RuneCountInString(word); n > MaxWordLength {
		return New(ErrCodeInvalidInput, "word too long (%d runes, max %d)", n, MaxWordLength)
	}

	for _, r := range word {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "word %q contains control characters", word)
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "word %q contains whitespace", word)
		}
	}

	return nil
}

// hexColorRegex matches #rgb and #rrggbb colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a CSS hex color such as "#1b9e77" or "#fff".
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q", color)
	}
	return nil
}
