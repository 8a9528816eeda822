package form

import "github.com/dmitrymomot/formcheck/pkg/field"

// Source is the form being validated. It supplies input values and renders
// the messages the Form produces; an empty message clears the previous one.
type Source interface {
	Value(id field.ID) string
	Checked(id field.ID) bool
	SetValue(id field.ID, value string)
	Display(id field.ID, message string)
}

// Requirer is implemented by sources that can mark an input as mandatory.
type Requirer interface {
	SetRequired(id field.ID, required bool)
}
