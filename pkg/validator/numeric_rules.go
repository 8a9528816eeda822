package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInt parses a trimmed base-10 integer with an optional sign.
// Fractions, exponents and trailing garbage are rejected.
func ParseInt(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, value)
	}
	return n, nil
}

// IntStringBetween validates that value parses as an integer in [min, max].
// Unparsable input fails the rule rather than being coerced to zero.
func IntStringBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n, err := ParseInt(value)
			if err != nil {
				return false
			}
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a whole number between %d and %d", min, max),
		},
	}
}
