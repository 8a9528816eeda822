package field

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned for identifiers outside the fixed field set.
var ErrUnknownField = errors.New("unknown field")

// Registry tracks the validity of every registered field.
// It always holds exactly one entry per field; entries start out invalid.
// A Registry is not safe for concurrent use.
type Registry struct {
	status map[ID]bool
}

// NewRegistry returns a registry with every field marked invalid.
func NewRegistry() *Registry {
	r := &Registry{status: make(map[ID]bool, len(ordered))}
	r.Reset()
	return r
}

// Set records the validity of id.
func (r *Registry) Set(id ID, valid bool) error {
	if _, ok := r.status[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, id)
	}
	r.status[id] = valid
	return nil
}

// Valid returns the recorded validity of id. Unknown ids are never valid.
func (r *Registry) Valid(id ID) bool {
	return r.status[id]
}

// AllValid reports whether every field is currently valid.
func (r *Registry) AllValid() bool {
	for _, id := range ordered {
		if !r.status[id] {
			return false
		}
	}
	return true
}

// Invalid returns the invalid fields in check order.
func (r *Registry) Invalid() []ID {
	var out []ID
	for _, id := range ordered {
		if !r.status[id] {
			out = append(out, id)
		}
	}
	return out
}

// Reset marks every field invalid.
func (r *Registry) Reset() {
	for _, id := range ordered {
		r.status[id] = false
	}
}

// Snapshot is a point-in-time copy of the registry.
type Snapshot map[ID]bool

// Snapshot copies the current state.
func (r *Registry) Snapshot() Snapshot {
	out := make(Snapshot, len(r.status))
	for id, v := range r.status {
		out[id] = v
	}
	return out
}
