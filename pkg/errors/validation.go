package errors

import (
	"unicode"
)

// ValidateFieldName checks a field label. path locates the field in the
// document and is included in the message. Any text is accepted, including
// the empty label of padding fields, except control characters: labels are
// drawn on a single line.
func ValidateFieldName(path, name string) error {
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeParse, "%s: field name contains control characters", path)
		}
	}
	return nil
}

// ValidatePositive rejects zero and negative values for a named setting.
func ValidatePositive(setting string, v int) error {
	if v <= 0 {
		return New(ErrCodeConfiguration, "%s must be positive, got %d", setting, v)
	}
	return nil
}

// ValidateFraction rejects values outside the open interval (0, 1).
func ValidateFraction(setting string, v float64) error {
	if !(v > 0 && v < 1) {
		return New(ErrCodeConfiguration, "%s must be between 0 and 1 (exclusive), got %g", setting, v)
	}
	return nil
}
