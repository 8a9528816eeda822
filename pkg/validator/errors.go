package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotInteger is returned by ParseInt for values that are not a plain base-10 integer.
	ErrNotInteger = errors.New("value is not an integer")
)
