package ai

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed required input. It is the
// only error the analysis core produces; absence of keyword matches is a
// valid outcome, not an error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
