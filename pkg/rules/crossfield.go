package rules

import (
	"time"

	"github.com/dmitrymomot/formcheck/pkg/country"
	"github.com/dmitrymomot/formcheck/pkg/field"
	"github.com/dmitrymomot/formcheck/pkg/sanitizer"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// CountryAndCode checks that country is listed in table with exactly the given
// dialing code. The result applies to both the country and the code field.
func CountryAndCode(table *country.Table, countryName, code string) Result {
	countryName = sanitizer.Trim(countryName)
	code = sanitizer.Trim(code)

	return first(
		validator.Rule{
			Check: func() bool { return countryName != "" && code != "" },
			Error: validator.ValidationError{Field: field.Country.String(), Message: MsgCountryCodeEmpty},
		},
		validator.Rule{
			Check: func() bool { return table.Matches(countryName, code) },
			Error: validator.ValidationError{Field: field.Country.String(), Message: MsgCountryCodeMatch},
		},
	)
}

// Limits bounds the date-of-birth check.
type Limits struct {
	MinAge       int
	MaxAge       int
	MinBirthYear int
}

// DefaultLimits returns the standard bounds: ages 1 to 120, born 1900 or later.
func DefaultLimits() Limits {
	return Limits{MinAge: MinAge, MaxAge: MaxAge, MinBirthYear: 1900}
}

// DOBResult reports the validity of each date-of-birth input together with a
// single message for the whole group.
type DOBResult struct {
	Day     bool
	Month   bool
	Year    bool
	Age     bool
	Message string
}

// Valid reports whether the birth date is real and agrees with the stated age.
func (r DOBResult) Valid() bool {
	return r.Day && r.Month && r.Year && r.Age && r.Message == ""
}

// DateOfBirth checks day, month and year against each other and against the
// stated age, as of now, using DefaultLimits.
func DateOfBirth(now time.Time, day, month, year, age string) DOBResult {
	return DateOfBirthWithin(now, day, month, year, age, DefaultLimits())
}

// DateOfBirthWithin is DateOfBirth with explicit limits.
//
// Messages are reported in this order: day, month, year, impossible date,
// age mismatch, age out of range. Day, month and year validity reflect their
// own range checks only; age validity requires a real date whose derived age
// equals the stated one and lies within the age bounds.
//
// This is stricter than a calendar round trip. A birth date after now fails
// with "Invalid date." even when the day exists, and a derived age outside
// [lim.MinAge, lim.MaxAge] fails with the age range message even when it
// matches the stated age, so a baby born this year (age "0") is rejected
// under the default limits.
func DateOfBirthWithin(now time.Time, day, month, year, age string, lim Limits) DOBResult {
	dayCheck := dayRule(day)
	monthCheck := monthRule(month)
	yearCheck := yearRule(year, lim.MinBirthYear, now.Year())

	res := DOBResult{
		Day:   dayCheck.Check(),
		Month: monthCheck.Check(),
		Year:  yearCheck.Check(),
	}

	var birth time.Time
	isReal := false
	if res.Day && res.Month && res.Year {
		d, _ := validator.ParseInt(day)
		m, _ := validator.ParseInt(month)
		y, _ := validator.ParseInt(year)

		birth = time.Date(y, time.Month(m), d, 0, 0, 0, 0, now.Location())
		isReal = validator.First(
			validator.RealDate(field.DOB.String(), y, m, d),
			validator.NotAfter(field.DOB.String(), birth, now),
		) == nil
	}

	claimed, ageErr := validator.ParseInt(age)
	matches := isReal && ageErr == nil && validator.AgeEquals(field.Age.String(), birth, now, claimed).Check()
	inRange := validator.IntStringBetween(field.Age.String(), age, lim.MinAge, lim.MaxAge).Check()
	res.Age = matches && inRange

	if e := validator.First(
		dayCheck,
		monthCheck,
		yearCheck,
		validator.Rule{
			Check: func() bool { return isReal },
			Error: validator.ValidationError{Field: field.DOB.String(), Message: MsgInvalidDate},
		},
		validator.Rule{
			Check: func() bool { return matches },
			Error: validator.ValidationError{Field: field.Age.String(), Message: MsgAgeMismatch},
		},
		validator.Rule{
			Check: func() bool { return inRange },
			Error: validator.ValidationError{Field: field.Age.String(), Message: AgeMessage(lim.MinAge, lim.MaxAge)},
		},
	); e != nil {
		res.Message = e.Message
	}

	return res
}

// Day checks a birth day on its own: a whole number from 1 to 31.
func Day(value string) Result {
	return first(dayRule(value))
}

// Month checks a birth month on its own: a whole number from 1 to 12.
func Month(value string) Result {
	return first(monthRule(value))
}

// Year checks a birth year on its own: a whole number from minYear to maxYear.
func Year(value string, minYear, maxYear int) Result {
	return first(yearRule(value, minYear, maxYear))
}

func dayRule(value string) validator.Rule {
	return validator.IntStringBetween(field.DOBDay.String(), value, 1, 31).WithMessage(MsgInvalidDay)
}

func monthRule(value string) validator.Rule {
	return validator.IntStringBetween(field.DOBMonth.String(), value, 1, 12).WithMessage(MsgInvalidMonth)
}

func yearRule(value string, minYear, maxYear int) validator.Rule {
	return validator.IntStringBetween(field.DOBYear.String(), value, minYear, maxYear).WithMessage(MsgInvalidYear)
}

// Secrets is valid unless the reveal-secrets flag is set without an uploaded file.
func Secrets(revealed, hasFile bool) Result {
	return first(
		validator.RequiredIf(field.File.String(), revealed, hasFile).WithMessage(MsgSecretsFile),
	)
}
