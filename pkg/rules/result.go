package rules

import "github.com/dmitrymomot/formcheck/pkg/validator"

// Result is the outcome of checking one field.
// Valid is true exactly when Message is empty.
type Result struct {
	Valid   bool
	Message string
}

// Pass is the result of a successful check.
func Pass() Result {
	return Result{Valid: true}
}

// Fail is the result of a failed check. An empty message is replaced with a
// generic one so that a failure is never silent.
func Fail(message string) Result {
	if message == "" {
		message = validator.ErrValidationFailed.Error()
	}
	return Result{Message: message}
}

// first evaluates rules in order and reports the first failure.
func first(rules ...validator.Rule) Result {
	if e := validator.First(rules...); e != nil {
		return Fail(e.Message)
	}
	return Pass()
}
