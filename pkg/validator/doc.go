// Package validator provides the small rule engine the form checks are built on.
//
// A Rule pairs a boolean Check with a ValidationError describing the failure.
// Rules are plain values: constructing one does no work, and evaluating it has
// no side effects, so the package holds no state and is safe for concurrent use.
//
// Two evaluation strategies are offered:
//
//   - Apply runs every rule and aggregates failures into ValidationErrors, which
//     implements error and can be inspected with Has, Get and Fields.
//   - First stops at the first failing rule. Form fields use it so that exactly
//     one message is reported per field, in the order the rules are listed.
//
// # Usage
//
//	if e := validator.First(
//	    validator.RequiredString("firstName", v).WithMessage("First name is required."),
//	    validator.MatchesPattern("firstName", v, namePattern, "name").
//	        WithMessage("First name must contain only letters and spaces."),
//	); e != nil {
//	    show(e.Message)
//	}
//
// Each source file groups a family of rules (string_rules.go, pattern_rules.go,
// numeric_rules.go, date_rules.go). Default messages are short and generic;
// callers override them with Rule.WithMessage.
package validator
