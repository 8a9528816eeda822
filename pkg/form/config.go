package form

import (
	"github.com/dmitrymomot/formcheck/pkg/country"
	"github.com/dmitrymomot/formcheck/pkg/rules"
)

type Config struct {
	MinAge        int    `env:"FORM_MIN_AGE" envDefault:"1"`           // MinAge is the lowest accepted age, inclusive.
	MaxAge        int    `env:"FORM_MAX_AGE" envDefault:"120"`         // MaxAge is the highest accepted age, inclusive.
	MinBirthYear  int    `env:"FORM_MIN_BIRTH_YEAR" envDefault:"1900"` // MinBirthYear is the earliest accepted birth year.
	CountriesFile string `env:"FORM_COUNTRIES_FILE"`                   // CountriesFile is a YAML country table; empty means the built-in table.
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	lim := rules.DefaultLimits()
	return Config{
		MinAge:       lim.MinAge,
		MaxAge:       lim.MaxAge,
		MinBirthYear: lim.MinBirthYear,
	}
}

// Limits converts the age and year bounds. Non-positive values fall back to
// the defaults.
func (c Config) Limits() rules.Limits {
	lim := rules.DefaultLimits()
	if c.MinAge > 0 {
		lim.MinAge = c.MinAge
	}
	if c.MaxAge > 0 {
		lim.MaxAge = c.MaxAge
	}
	if c.MinBirthYear > 0 {
		lim.MinBirthYear = c.MinBirthYear
	}
	return lim
}

// Countries loads the configured country table.
func (c Config) Countries() (*country.Table, error) {
	if c.CountriesFile == "" {
		return country.Default(), nil
	}
	return country.LoadFile(c.CountriesFile)
}

// NewFromConfig creates a Form from cfg. Options given explicitly are applied
// after the configuration and take precedence.
func NewFromConfig(src Source, cfg Config, opts ...Option) (*Form, error) {
	table, err := cfg.Countries()
	if err != nil {
		return nil, err
	}

	configOpts := make([]Option, 0, 2+len(opts))
	configOpts = append(configOpts, WithLimits(cfg.Limits()), WithCountries(table))
	configOpts = append(configOpts, opts...)

	return New(src, configOpts...), nil
}
