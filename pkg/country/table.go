package country

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/sanitizer"
)

// Entry pairs a country name with its dialing code.
// Code is stored without the leading "+".
type Entry struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// DialCode returns the code in the form users type it, e.g. "+44".
func (e Entry) DialCode() string {
	return "+" + e.Code
}

var (
	codePattern = regexp.MustCompile(`^[0-9]{1,3}(?:-[0-9]{1,3})?$`)

	normalizeName = sanitizer.Compose(sanitizer.Trim, sanitizer.FoldCase)
)

// Table is an immutable country reference table.
// Lookups are case-insensitive on the country name.
type Table struct {
	entries []Entry
	byName  map[string]Entry
}

// NewTable validates entries and builds a table from them.
// Names must be unique after case folding; codes must be digits only.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]Entry, len(entries)),
	}
	for i, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		e.Code = strings.TrimPrefix(strings.TrimSpace(e.Code), "+")

		if e.Name == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyName, i)
		}
		if !codePattern.MatchString(e.Code) {
			return nil, fmt.Errorf("%w: %s has %q", ErrInvalidCode, e.Name, e.Code)
		}

		key := normalizeName(e.Name)
		if prev, ok := t.byName[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateCountry, prev.Name, e.Name)
		}
		t.byName[key] = e
		t.entries = append(t.entries, e)
	}

	return t, nil
}

// Lookup finds a country by name, ignoring case and surrounding whitespace.
// Names are compared under full Unicode case folding, which is wider than
// lowercasing: "STRASSE" and "Straße" name the same entry, as do "Σ" and "ς".
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.byName[normalizeName(name)]
	return e, ok
}

// Matches reports whether name is in the table and its dialing code, prefixed
// with "+", equals code exactly. The code is compared after trimming only.
func (t *Table) Matches(name, code string) bool {
	e, ok := t.Lookup(name)
	if !ok {
		return false
	}
	return e.DialCode() == strings.TrimSpace(code)
}

// Entries returns a copy of the table rows in their original order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of countries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
