package validator

import (
	"fmt"
	"time"
)

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsRealDate reports whether year, month and day name an existing calendar day.
// time.Date normalises overflow (Feb 30 becomes Mar 1), so a date is real only
// when it survives the round trip unchanged.
func IsRealDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// AgeAt returns the number of full years between birthdate and now.
// Only the calendar date matters; the time of day is ignored.
func AgeAt(birthdate, now time.Time) int {
	age := now.Year() - birthdate.Year()

	// Adjust if birthday hasn't occurred this year
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}

	return age
}

// RealDate validates that the given components form an existing calendar day.
func RealDate(field string, year, month, day int) Rule {
	return Rule{
		Check: func() bool {
			return IsRealDate(year, month, day)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a real calendar date",
		},
	}
}

// NotAfter validates that value does not fall on a later calendar day than limit.
func NotAfter(field string, value time.Time, limit time.Time) Rule {
	return Rule{
		Check: func() bool {
			v := time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
			l := time.Date(limit.Year(), limit.Month(), limit.Day(), 0, 0, 0, 0, time.UTC)
			return !v.After(l)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("date must not be after %s", limit.Format("2006-01-02")),
		},
	}
}

// AgeEquals validates that the claimed age matches the age derived from birthdate at now.
func AgeEquals(field string, birthdate time.Time, now time.Time, claimed int) Rule {
	return Rule{
		Check: func() bool {
			return AgeAt(birthdate, now) == claimed
		},
		Error: ValidationError{
			Field:   field,
			Message: "age does not match birthdate",
		},
	}
}
