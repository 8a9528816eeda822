package validator

import "strings"

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// Accepted validates that a checkbox-style value is set.
func Accepted(field string, value bool) Rule {
	return Rule{
		Check: func() bool {
			return value
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be accepted",
		},
	}
}

// RequiredIf validates that value is present whenever cond holds.
func RequiredIf(field string, cond bool, present bool) Rule {
	return Rule{
		Check: func() bool {
			return !cond || present
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}
