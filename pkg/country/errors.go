package country

import "errors"

var (
	ErrEmptyTable        = errors.New("country table has no entries")
	ErrEmptyName         = errors.New("country name is empty")
	ErrDuplicateCountry  = errors.New("duplicate country name")
	ErrInvalidCode       = errors.New("dialing code must be 1 to 3 digits, optionally followed by - and 1 to 3 digits")
	ErrFailedToParseYAML = errors.New("failed to parse country table")
	ErrFailedToReadFile  = errors.New("failed to read country table file")
)
