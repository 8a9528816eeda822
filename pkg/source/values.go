package source

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/formcheck/pkg/field"
	"github.com/dmitrymomot/formcheck/pkg/sanitizer"
)

// inputs lists every identifier a submission may carry.
func inputs() []field.ID {
	return append(field.All(), field.Secrets, field.File)
}

// FromValues builds a form from multi-valued form data such as url.Values.
// Only the first value of each input is used. Checkboxes are checked when
// present with a truthy value ("on", "true", "1" ...).
func FromValues(values map[string][]string) *Memory {
	m := NewMemory()
	for _, id := range inputs() {
		vs, ok := values[id.String()]
		if !ok || len(vs) == 0 {
			continue
		}
		if field.IsCheckbox(id) {
			m.Check(id, sanitizer.ToBool(vs[0]))
			continue
		}
		m.Set(id, vs[0])
	}
	return m
}

// FromMap builds a form from decoded JSON or YAML data. Numbers are rendered
// in base 10, booleans set checkboxes, and unknown keys are ignored.
func FromMap(data map[string]any) (*Memory, error) {
	m := NewMemory()
	for _, id := range inputs() {
		raw, ok := data[id.String()]
		if !ok || raw == nil {
			continue
		}

		var s string
		switch v := raw.(type) {
		case bool:
			if field.IsCheckbox(id) {
				m.Check(id, v)
				continue
			}
			s = strconv.FormatBool(v)
		case string:
			s = v
		case int:
			s = strconv.Itoa(v)
		case int64:
			s = strconv.FormatInt(v, 10)
		case uint64:
			s = strconv.FormatUint(v, 10)
		case float64:
			s = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("%w: %s has %T", ErrInvalidValue, id, raw)
		}

		if field.IsCheckbox(id) {
			m.Check(id, sanitizer.ToBool(s))
			continue
		}
		m.Set(id, s)
	}
	return m, nil
}
