package form

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formcheck/pkg/country"
	"github.com/dmitrymomot/formcheck/pkg/rules"
)

// Option configures a Form.
type Option func(*Form)

// WithClock sets the time source for age calculations.
func WithClock(now func() time.Time) Option {
	return func(f *Form) {
		if now != nil {
			f.now = now
		}
	}
}

// WithCountries sets the country table used to pair countries with codes.
func WithCountries(t *country.Table) Option {
	return func(f *Form) {
		if t != nil {
			f.countries = t
		}
	}
}

// WithLimits sets the age and birth year bounds.
func WithLimits(lim rules.Limits) Option {
	return func(f *Form) {
		f.limits = lim
	}
}

// WithConfig applies the bounds from cfg. The country table is not loaded;
// use NewFromConfig for that.
func WithConfig(cfg Config) Option {
	return WithLimits(cfg.Limits())
}

// WithLogger sets the logger. Checks are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// WithContext sets the context passed to the logger, so values such as a
// submission id end up on every record.
func WithContext(ctx context.Context) Option {
	return func(f *Form) {
		if ctx != nil {
			f.ctx = ctx
		}
	}
}
