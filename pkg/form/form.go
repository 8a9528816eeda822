package form

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formcheck/pkg/country"
	"github.com/dmitrymomot/formcheck/pkg/field"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/rules"
	"github.com/dmitrymomot/formcheck/pkg/sanitizer"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// Form validates one form and tracks the validity of each field.
// A Form is not safe for concurrent use; separate Forms are independent.
type Form struct {
	src       Source
	status    *field.Registry
	countries *country.Table
	limits    rules.Limits
	now       func() time.Time
	log       *slog.Logger
	ctx       context.Context
}

// New creates a Form reading from and reporting to src. Every field starts invalid.
func New(src Source, opts ...Option) *Form {
	f := &Form{
		src:       src,
		status:    field.NewRegistry(),
		countries: country.Default(),
		limits:    rules.DefaultLimits(),
		now:       time.Now,
		log:       logger.Discard(),
		ctx:       context.Background(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.With(logger.Component("form"))
	return f
}

// CheckField validates a single field, records its validity and displays its
// message. Day, month and year messages are shown under field.DOB. Checking
// the country or the code re-evaluates both fields of the pair.
func (f *Form) CheckField(id field.ID) rules.Result {
	if !field.Known(id) {
		f.log.WarnContext(f.ctx, "check requested for unknown field",
			logger.Field(id),
			logger.Error(field.ErrUnknownField),
		)
		return rules.Fail(field.ErrUnknownField.Error())
	}

	if id == field.Country || id == field.CountryCode {
		countryRes, codeRes := f.checkCountryPair()
		if id == field.Country {
			return countryRes
		}
		return codeRes
	}

	res, target := f.evaluate(id)
	f.record(id, target, res)
	return res
}

// evaluate runs the rule for a single-input field and returns the result
// together with the identifier its message is shown under.
func (f *Form) evaluate(id field.ID) (rules.Result, field.ID) {
	v := f.value(id)

	switch id {
	case field.FirstName:
		return rules.FirstName(v), id
	case field.Surname:
		return rules.Surname(v), id
	case field.Email:
		return rules.Email(v), id
	case field.Age:
		return rules.AgeBetween(v, f.limits.MinAge, f.limits.MaxAge), id
	case field.DOBDay:
		return rules.Day(v), field.DOB
	case field.DOBMonth:
		return rules.Month(v), field.DOB
	case field.DOBYear:
		return rules.Year(v, f.limits.MinBirthYear, f.now().Year()), field.DOB
	case field.PhoneNumber:
		return rules.PhoneNumber(v), id
	case field.Terms:
		return rules.Terms(f.src.Checked(id)), id
	default:
		return rules.Fail(field.ErrUnknownField.Error()), id
	}
}

// checkCountryPair applies the pairing check to both fields. The code field
// additionally needs a well-formed code; its format message wins.
func (f *Form) checkCountryPair() (countryRes, codeRes rules.Result) {
	code := f.value(field.CountryCode)

	countryRes = rules.CountryAndCode(f.countries, f.value(field.Country), code)
	codeRes = countryRes
	if syntax := rules.CountryCode(code); !syntax.Valid {
		codeRes = syntax
	}

	f.record(field.Country, field.Country, countryRes)
	f.record(field.CountryCode, field.CountryCode, codeRes)
	return countryRes, codeRes
}

// ValidateCountryAndCode reports whether name and code belong together.
// It returns the message to show, or "" when they match. The field status is
// not changed.
func (f *Form) ValidateCountryAndCode(name, code string) string {
	return rules.CountryAndCode(f.countries, name, code).Message
}

// ValidateDOBAndAge checks the birth date against the stated age, updates the
// status of the day, month, year and age fields and shows the outcome under
// field.DOB.
func (f *Form) ValidateDOBAndAge() bool {
	return f.checkDOB().Valid()
}

func (f *Form) checkDOB() rules.DOBResult {
	res := rules.DateOfBirthWithin(
		f.now(),
		f.value(field.DOBDay),
		f.value(field.DOBMonth),
		f.value(field.DOBYear),
		f.value(field.Age),
		f.limits,
	)

	_ = f.status.Set(field.DOBDay, res.Day)
	_ = f.status.Set(field.DOBMonth, res.Month)
	_ = f.status.Set(field.DOBYear, res.Year)
	_ = f.status.Set(field.Age, res.Age)
	f.src.Display(field.DOB, res.Message)

	f.log.DebugContext(f.ctx, "date of birth checked",
		logger.Field(field.DOB),
		logger.Valid(res.Valid()),
		logger.Message(res.Message),
	)
	return res
}

// checkSecrets applies the conditional file requirement. It never touches
// the field status.
func (f *Form) checkSecrets() rules.Result {
	res := rules.Secrets(f.src.Checked(field.Secrets), f.value(field.File) != "")
	f.src.Display(field.File, res.Message)
	return res
}

// CheckAll validates every field, then the date of birth against the age,
// then the secrets upload. It reports whether the whole form is valid.
func (f *Form) CheckAll() bool {
	return f.checkAll(nil)
}

// Validate is CheckAll returning the failures as validator.ValidationErrors,
// one entry per displayed message. It returns nil when the form is valid.
func (f *Form) Validate() error {
	var errs validator.ValidationErrors
	if f.checkAll(&errs) {
		return nil
	}
	return errs
}

func (f *Form) checkAll(errs *validator.ValidationErrors) bool {
	fail := func(id field.ID, msg string) {
		if errs != nil && !errs.Has(id.String()) {
			errs.Add(validator.ValidationError{Field: id.String(), Message: msg})
		}
	}

	for _, id := range field.All() {
		res := f.CheckField(id)
		// Date parts are reported once, by the date of birth check below.
		if res.Valid || isDatePart(id) {
			continue
		}
		fail(id, res.Message)
	}

	if dob := f.checkDOB(); !dob.Valid() {
		fail(field.DOB, dob.Message)
	}

	secrets := f.checkSecrets()
	if !secrets.Valid {
		fail(field.File, secrets.Message)
	}

	return f.status.AllValid() && secrets.Valid
}

// Input handles a change of one input, the way a form reacts to typing:
// the field is checked, a change to any date of birth or age input
// re-validates the whole date, and toggling the secrets checkbox updates the
// file requirement.
func (f *Form) Input(id field.ID) rules.Result {
	switch id {
	case field.Secrets:
		f.ToggleSecrets()
		return rules.Pass()
	case field.File:
		return f.checkSecrets()
	}

	res := f.CheckField(id)
	if field.IsDOB(id) && f.dobComplete() {
		f.checkDOB()
	}
	return res
}

// dobComplete reports whether every date of birth input has a value, so the
// date is not reported as invalid while it is still being typed.
func (f *Form) dobComplete() bool {
	for _, id := range []field.ID{field.DOBDay, field.DOBMonth, field.DOBYear, field.Age} {
		if f.value(id) == "" {
			return false
		}
	}
	return true
}

// ToggleSecrets applies the current state of the secrets checkbox: when set,
// the file becomes required; when cleared, the requirement, the uploaded file
// and its message are removed. It returns the checkbox state.
func (f *Form) ToggleSecrets() bool {
	on := f.src.Checked(field.Secrets)
	if r, ok := f.src.(Requirer); ok {
		r.SetRequired(field.File, on)
	}
	if !on {
		f.src.SetValue(field.File, "")
		f.src.Display(field.File, "")
	}
	f.log.DebugContext(f.ctx, "secrets toggled", logger.Field(field.Secrets), slog.Bool("revealed", on))
	return on
}

// Submit clears every message, validates the whole form and, on success,
// shows the confirmation under field.Feedback.
func (f *Form) Submit() bool {
	for _, id := range messageTargets() {
		f.src.Display(id, "")
	}

	if !f.CheckAll() {
		f.log.InfoContext(f.ctx, "form rejected",
			logger.Valid(false),
			logger.Fields(f.status.Invalid()),
		)
		return false
	}

	f.src.Display(field.Feedback, rules.MsgFormSent)
	f.log.InfoContext(f.ctx, "form accepted", logger.Valid(true))
	return true
}

// Status returns a copy of the current field validity.
func (f *Form) Status() field.Snapshot {
	return f.status.Snapshot()
}

// Valid reports the recorded validity of id without re-checking it.
func (f *Form) Valid(id field.ID) bool {
	return f.status.Valid(id)
}

func (f *Form) value(id field.ID) string {
	return sanitizer.Trim(f.src.Value(id))
}

func (f *Form) record(id, target field.ID, res rules.Result) {
	_ = f.status.Set(id, res.Valid)
	f.src.Display(target, res.Message)
	f.log.DebugContext(f.ctx, "field checked",
		logger.Field(id),
		logger.Valid(res.Valid),
		logger.Message(res.Message),
	)
}

func isDatePart(id field.ID) bool {
	return id == field.DOBDay || id == field.DOBMonth || id == field.DOBYear
}

func messageTargets() []field.ID {
	return append(field.All(), field.DOB, field.File, field.Feedback)
}
