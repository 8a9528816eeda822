package country

import (
	_ "embed"
	"errors"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var defaultTableYAML []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

type document struct {
	Countries []Entry `yaml:"countries"`
}

// Default returns the built-in country table.
// It panics if the embedded data is malformed, which only a broken build can cause.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(defaultTableYAML)
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// Parse builds a table from YAML of the form:
//
//	countries:
//	  - name: United Kingdom
//	    code: "44"
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return NewTable(doc.Countries)
}

// Load reads a YAML country table from r.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(data)
}

// LoadFile reads a YAML country table from path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	defer f.Close()

	return Load(f)
}
