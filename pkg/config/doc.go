// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct-tag driven parsing:
//
//	type FormConfig struct {
//	    MinAge        int    `env:"FORM_MIN_AGE" envDefault:"1"`
//	    CountriesFile string `env:"FORM_COUNTRIES_FILE"`
//	}
//
//	var cfg FormConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Load reads the optional default .env once, then parses each configuration
// type at most once per process and serves later calls from a cache. Use
// LoadEnv for non-default .env files and ResetCache in tests after changing
// the environment.
//
// Errors are sentinel values (ErrParsingConfig, ErrLoadingEnvFile,
// ErrNilPointer) joined with the underlying cause, so errors.Is works.
package config
