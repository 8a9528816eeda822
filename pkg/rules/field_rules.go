package rules

import (
	"regexp"

	"github.com/dmitrymomot/formcheck/pkg/field"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// Field patterns. Words are separated by exactly one ASCII space; values are
// trimmed before they reach a pattern, so leading and trailing runs never match.
var (
	firstNamePattern   = regexp.MustCompile(`^[A-Za-z]+(?: [A-Za-z]+)*$`)
	surnamePattern     = regexp.MustCompile(`^[A-Za-z]+(?: [A-Za-z]+)*(?: [0-9]+)?$`)
	emailPattern       = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	phonePattern       = regexp.MustCompile(`^[1-9][0-9]{9,14}$`)
	countryCodePattern = regexp.MustCompile(`^\+[0-9]{1,3}(?:-[0-9]{1,3})?$`)
)

// Default age bounds, inclusive.
const (
	MinAge = 1
	MaxAge = 120
)

// FirstName accepts one or more runs of ASCII letters joined by single spaces.
func FirstName(value string) Result {
	name := field.FirstName.String()
	return first(
		validator.RequiredString(name, value).WithMessage(MsgFirstNameRequired),
		validator.MatchesPattern(name, value, firstNamePattern, "name").WithMessage(MsgFirstNameInvalid),
	)
}

// Surname is FirstName plus an optional trailing " <digits>" suffix ("Smith 3").
// Hyphens are never accepted.
func Surname(value string) Result {
	name := field.Surname.String()
	return first(
		validator.RequiredString(name, value).WithMessage(MsgSurnameRequired),
		validator.MatchesPattern(name, value, surnamePattern, "surname").WithMessage(MsgSurnameInvalid),
	)
}

// Email reports the same message for an empty and a malformed address.
func Email(value string) Result {
	return first(
		validator.MatchesPattern(field.Email.String(), value, emailPattern, "email").WithMessage(MsgEmailInvalid),
	)
}

// Age accepts whole numbers from MinAge to MaxAge.
func Age(value string) Result {
	return AgeBetween(value, MinAge, MaxAge)
}

// AgeBetween accepts whole numbers in [minAge, maxAge]. Zero, negative and
// non-numeric input all fail with the same message.
func AgeBetween(value string, minAge, maxAge int) Result {
	return first(
		validator.IntStringBetween(field.Age.String(), value, minAge, maxAge).WithMessage(AgeMessage(minAge, maxAge)),
	)
}

// PhoneNumber accepts 10 to 15 digits with no leading zero and no separators.
func PhoneNumber(value string) Result {
	return first(
		validator.MatchesPattern(field.PhoneNumber.String(), value, phonePattern, "phone").WithMessage(MsgPhoneInvalid),
	)
}

// CountryCode checks the syntax of a dialing code such as "+44" or "+1-234".
// It says nothing about whether the code belongs to the selected country.
func CountryCode(value string) Result {
	return first(
		validator.MatchesPattern(field.CountryCode.String(), value, countryCodePattern, "country code").WithMessage(MsgCountryCodeFormat),
	)
}

// Terms requires the terms and conditions checkbox to be ticked.
func Terms(checked bool) Result {
	return first(
		validator.Accepted(field.Terms.String(), checked).WithMessage(MsgTermsRequired),
	)
}
