package source

import (
	"maps"

	"github.com/dmitrymomot/formcheck/pkg/field"
)

// Memory is an in-memory form: it stores input values and checkbox states and
// records the messages and required marks the validation engine sets.
// It is not safe for concurrent use.
type Memory struct {
	values   map[field.ID]string
	checked  map[field.ID]bool
	messages map[field.ID]string
	required map[field.ID]bool
}

// NewMemory returns an empty form.
func NewMemory() *Memory {
	return &Memory{
		values:   make(map[field.ID]string),
		checked:  make(map[field.ID]bool),
		messages: make(map[field.ID]string),
		required: make(map[field.ID]bool),
	}
}

// Set stores a text value and returns m for chaining.
func (m *Memory) Set(id field.ID, value string) *Memory {
	m.values[id] = value
	return m
}

// Check sets a checkbox state and returns m for chaining.
func (m *Memory) Check(id field.ID, on bool) *Memory {
	m.checked[id] = on
	return m
}

// Value returns the stored text value; missing inputs read as "".
func (m *Memory) Value(id field.ID) string {
	return m.values[id]
}

// Checked returns the stored checkbox state; missing inputs read as unchecked.
func (m *Memory) Checked(id field.ID) bool {
	return m.checked[id]
}

// SetValue replaces a text value.
func (m *Memory) SetValue(id field.ID, value string) {
	m.values[id] = value
}

// Display records message for id; an empty message clears it.
func (m *Memory) Display(id field.ID, message string) {
	if message == "" {
		delete(m.messages, id)
		return
	}
	m.messages[id] = message
}

// SetRequired records whether id is currently mandatory.
func (m *Memory) SetRequired(id field.ID, required bool) {
	if !required {
		delete(m.required, id)
		return
	}
	m.required[id] = true
}

// Message returns the message currently shown for id.
func (m *Memory) Message(id field.ID) string {
	return m.messages[id]
}

// Messages returns a copy of every non-empty message.
func (m *Memory) Messages() map[field.ID]string {
	return maps.Clone(m.messages)
}

// Required reports whether id is marked mandatory.
func (m *Memory) Required(id field.ID) bool {
	return m.required[id]
}
