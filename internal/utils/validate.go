package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRegexp    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidationError reports a malformed input field. The caller can always
// recover by correcting the named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a field-scoped validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidateLength trims the value and checks its length bounds (inclusive).
// The trimmed value is returned.
func ValidateLength(value, field string, min, max int) (string, error) {
	v := strings.TrimSpace(value)
	if len(v) < min || len(v) > max {
		return "", NewValidationError(field, fmt.Sprintf("length must be between %d and %d", min, max))
	}
	return v, nil
}

// ValidateUsername checks the allowed username charset.
func ValidateUsername(value, field string) error {
	if !usernameRegexp.MatchString(value) {
		return NewValidationError(field, "must contain only letters, digits and underscores")
	}
	return nil
}

// ValidateEmail checks the e-mail shape.
func ValidateEmail(value, field string) error {
	if !emailRegexp.MatchString(value) {
		return NewValidationError(field, "must be a valid email address")
	}
	return nil
}

// ValidateLong parses the value as a base-10 integer.
func ValidateLong(value, field string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, NewValidationError(field, "must be a number")
	}
	return n, nil
}
