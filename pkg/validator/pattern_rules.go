package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchesPattern validates value against a pre-compiled pattern.
// Blank values never match, so pair it with RequiredString only when the
// two failures need different messages.
func MatchesPattern(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match %s pattern", description),
		},
	}
}
