package form_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/field"
	"github.com/dmitrymomot/formcheck/pkg/form"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/rules"
	"github.com/dmitrymomot/formcheck/pkg/source"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

var fixedNow = time.Date(2024, time.September, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// validSource returns a completely valid submission as of fixedNow.
func validSource() *source.Memory {
	return source.NewMemory().
		Set(field.FirstName, "John").
		Set(field.Surname, "Doe").
		Set(field.Email, "example@domain.com").
		Set(field.Age, "31").
		Set(field.DOBDay, "15").
		Set(field.DOBMonth, "6").
		Set(field.DOBYear, "1993").
		Set(field.Country, "United Kingdom").
		Set(field.CountryCode, "+44").
		Set(field.PhoneNumber, "1234567890").
		Check(field.Terms, true)
}

func newForm(src form.Source, opts ...form.Option) *form.Form {
	return form.New(src, append([]form.Option{form.WithClock(clock)}, opts...)...)
}

func TestNew(t *testing.T) {
	t.Parallel()

	f := newForm(source.NewMemory())
	status := f.Status()
	require.Len(t, status, len(field.All()))
	for _, id := range field.All() {
		assert.False(t, status[id], id)
	}
}

func TestForm_CheckAll(t *testing.T) {
	t.Parallel()

	t.Run("valid form", func(t *testing.T) {
		t.Parallel()
		src := validSource()
		f := newForm(src)

		assert.True(t, f.CheckAll())
		assert.Empty(t, src.Messages())
		for id, ok := range f.Status() {
			assert.True(t, ok, id)
		}
	})

	t.Run("terms unchecked", func(t *testing.T) {
		t.Parallel()
		src := validSource().Check(field.Terms, false)
		f := newForm(src)

		assert.False(t, f.CheckAll())
		assert.False(t, f.Valid(field.Terms))
		assert.Equal(t, rules.MsgTermsRequired, src.Message(field.Terms))
	})

	t.Run("empty form", func(t *testing.T) {
		t.Parallel()
		src := source.NewMemory()
		f := newForm(src)

		assert.False(t, f.CheckAll())
		assert.Equal(t, rules.MsgFirstNameRequired, src.Message(field.FirstName))
		assert.Equal(t, rules.MsgSurnameRequired, src.Message(field.Surname))
		assert.Equal(t, rules.MsgEmailInvalid, src.Message(field.Email))
		assert.Equal(t, rules.MsgInvalidDay, src.Message(field.DOB))
		assert.Equal(t, rules.MsgCountryCodeEmpty, src.Message(field.Country))
		assert.Equal(t, rules.MsgCountryCodeFormat, src.Message(field.CountryCode))
	})

	t.Run("values are trimmed", func(t *testing.T) {
		t.Parallel()
		src := validSource().
			Set(field.FirstName, "  John ").
			Set(field.Country, " united kingdom ").
			Set(field.Age, " 31 ")
		f := newForm(src)

		assert.True(t, f.CheckAll())
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		src := validSource().Set(field.Email, "not-an-email")
		f := newForm(src)

		first := f.CheckAll()
		firstStatus := f.Status()
		firstMessages := src.Messages()

		assert.Equal(t, first, f.CheckAll())
		assert.Equal(t, firstStatus, f.Status())
		assert.Equal(t, firstMessages, src.Messages())
	})
}

func TestForm_CheckField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      field.ID
		value   string
		target  field.ID
		message string
	}{
		{"valid first name", field.FirstName, "John", field.FirstName, ""},
		{"first name with digit", field.FirstName, "John3", field.FirstName, rules.MsgFirstNameInvalid},
		{"surname with number", field.Surname, "Smith 3", field.Surname, ""},
		{"surname with hyphen", field.Surname, "Smith-Jones", field.Surname, rules.MsgSurnameInvalid},
		{"phone leading zero", field.PhoneNumber, "0123456789", field.PhoneNumber, rules.MsgPhoneInvalid},
		{"valid phone", field.PhoneNumber, "1234567890", field.PhoneNumber, ""},
		{"age zero", field.Age, "0", field.Age, "Age must be between 1 and 120."},
		{"day out of range", field.DOBDay, "32", field.DOB, rules.MsgInvalidDay},
		{"month out of range", field.DOBMonth, "13", field.DOB, rules.MsgInvalidMonth},
		{"future year", field.DOBYear, "2025", field.DOB, rules.MsgInvalidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := source.NewMemory().Set(tt.id, tt.value)
			f := newForm(src)

			res := f.CheckField(tt.id)
			assert.Equal(t, tt.message == "", res.Valid)
			assert.Equal(t, tt.message, res.Message)
			assert.Equal(t, tt.message, src.Message(tt.target))
			assert.Equal(t, res.Valid, f.Valid(tt.id))
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		src := source.NewMemory()
		f := newForm(src)

		res := f.CheckField("middleName")
		assert.False(t, res.Valid)
		assert.Equal(t, field.ErrUnknownField.Error(), res.Message)
		assert.Empty(t, src.Messages())
		assert.Len(t, f.Status(), len(field.All()))
	})
}

func TestForm_CountryPair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		country    string
		code       string
		countryMsg string
		codeMsg    string
		countryOK  bool
		codeOK     bool
	}{
		{"matching pair", "United Kingdom", "+44", "", "", true, true},
		{"mismatched pair", "Germany", "+44", rules.MsgCountryCodeMatch, rules.MsgCountryCodeMatch, false, false},
		{"malformed code", "United Kingdom", "44", rules.MsgCountryCodeMatch, rules.MsgCountryCodeFormat, false, false},
		{"empty country", "", "+44", rules.MsgCountryCodeEmpty, rules.MsgCountryCodeEmpty, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, changed := range []field.ID{field.Country, field.CountryCode} {
				src := source.NewMemory().
					Set(field.Country, tt.country).
					Set(field.CountryCode, tt.code)
				f := newForm(src)

				f.CheckField(changed)
				assert.Equal(t, tt.countryOK, f.Valid(field.Country), changed)
				assert.Equal(t, tt.codeOK, f.Valid(field.CountryCode), changed)
				assert.Equal(t, tt.countryMsg, src.Message(field.Country), changed)
				assert.Equal(t, tt.codeMsg, src.Message(field.CountryCode), changed)
			}
		})
	}

	t.Run("validate without side effects", func(t *testing.T) {
		t.Parallel()
		src := source.NewMemory()
		f := newForm(src)

		assert.Equal(t, "", f.ValidateCountryAndCode("United Kingdom", "+44"))
		assert.Equal(t, rules.MsgCountryCodeMatch, f.ValidateCountryAndCode("Germany", "+44"))
		assert.False(t, f.Valid(field.Country))
		assert.Empty(t, src.Messages())
	})
}

func TestForm_ValidateDOBAndAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		day, month, year string
		age              string
		valid            bool
		message          string
	}{
		{"leap day", "29", "2", "2020", "4", true, ""},
		{"leap day in common year", "29", "2", "2021", "3", false, rules.MsgInvalidDate},
		{"age mismatch", "15", "6", "1993", "30", false, rules.MsgAgeMismatch},
		{"birthday later this year", "15", "12", "1993", "30", true, ""},
		{"invalid month", "15", "13", "1993", "31", false, rules.MsgInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := source.NewMemory().
				Set(field.DOBDay, tt.day).
				Set(field.DOBMonth, tt.month).
				Set(field.DOBYear, tt.year).
				Set(field.Age, tt.age)
			f := newForm(src)

			assert.Equal(t, tt.valid, f.ValidateDOBAndAge())
			assert.Equal(t, tt.message, src.Message(field.DOB))
			assert.Equal(t, tt.valid, f.Valid(field.Age))
		})
	}

	t.Run("mismatch marks age only", func(t *testing.T) {
		t.Parallel()
		src := validSource().Set(field.Age, "30")
		f := newForm(src)

		assert.False(t, f.CheckAll())
		assert.True(t, f.Valid(field.DOBDay))
		assert.True(t, f.Valid(field.DOBMonth))
		assert.True(t, f.Valid(field.DOBYear))
		assert.False(t, f.Valid(field.Age))
		assert.Equal(t, rules.MsgAgeMismatch, src.Message(field.DOB))
		assert.Equal(t, "", src.Message(field.Age))
	})
}

func TestForm_Secrets(t *testing.T) {
	t.Parallel()

	t.Run("revealed without file", func(t *testing.T) {
		t.Parallel()
		src := validSource().Check(field.Secrets, true)
		f := newForm(src)

		assert.False(t, f.CheckAll())
		assert.Equal(t, rules.MsgSecretsFile, src.Message(field.File))
		for id, ok := range f.Status() {
			assert.True(t, ok, "secrets gate must not change %s", id)
		}
	})

	t.Run("revealed with file", func(t *testing.T) {
		t.Parallel()
		src := validSource().Check(field.Secrets, true).Set(field.File, "keys.txt")
		f := newForm(src)

		assert.True(t, f.CheckAll())
	})

	t.Run("toggle", func(t *testing.T) {
		t.Parallel()
		src := source.NewMemory().Check(field.Secrets, true)
		f := newForm(src)

		assert.True(t, f.ToggleSecrets())
		assert.True(t, src.Required(field.File))

		src.Set(field.File, "keys.txt")
		src.Display(field.File, rules.MsgSecretsFile)
		src.Check(field.Secrets, false)

		assert.False(t, f.ToggleSecrets())
		assert.False(t, src.Required(field.File))
		assert.Equal(t, "", src.Value(field.File))
		assert.Equal(t, "", src.Message(field.File))
	})
}

func TestForm_Input(t *testing.T) {
	t.Parallel()

	t.Run("incomplete date is not cross-checked", func(t *testing.T) {
		t.Parallel()
		src := source.NewMemory().Set(field.DOBDay, "15")
		f := newForm(src)

		res := f.Input(field.DOBDay)
		assert.True(t, res.Valid)
		assert.Equal(t, "", src.Message(field.DOB))
	})

	t.Run("completed date is cross-checked", func(t *testing.T) {
		t.Parallel()
		src := source.NewMemory().
			Set(field.DOBDay, "15").
			Set(field.DOBMonth, "6").
			Set(field.DOBYear, "1993").
			Set(field.Age, "40")
		f := newForm(src)

		res := f.Input(field.Age)
		assert.True(t, res.Valid)
		assert.False(t, f.Valid(field.Age))
		assert.Equal(t, rules.MsgAgeMismatch, src.Message(field.DOB))

		src.Set(field.Age, "31")
		f.Input(field.Age)
		assert.True(t, f.Valid(field.Age))
		assert.Equal(t, "", src.Message(field.DOB))
	})

	t.Run("secrets checkbox", func(t *testing.T) {
		t.Parallel()
		src := source.NewMemory().Check(field.Secrets, true)
		f := newForm(src)

		assert.True(t, f.Input(field.Secrets).Valid)
		assert.True(t, src.Required(field.File))
		assert.Equal(t, rules.MsgSecretsFile, f.Input(field.File).Message)
	})
}

func TestForm_Submit(t *testing.T) {
	t.Parallel()

	t.Run("success shows feedback", func(t *testing.T) {
		t.Parallel()
		src := validSource()
		f := newForm(src)

		assert.True(t, f.Submit())
		assert.Equal(t, rules.MsgFormSent, src.Message(field.Feedback))
	})

	t.Run("failure clears feedback", func(t *testing.T) {
		t.Parallel()
		src := validSource()
		f := newForm(src)
		require.True(t, f.Submit())

		src.Set(field.PhoneNumber, "0123")
		assert.False(t, f.Submit())
		assert.Equal(t, "", src.Message(field.Feedback))
		assert.Equal(t, rules.MsgPhoneInvalid, src.Message(field.PhoneNumber))
	})

	t.Run("logs rejected fields", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatJSON))
		f := newForm(validSource().Check(field.Terms, false), form.WithLogger(log))

		assert.False(t, f.Submit())
		assert.Contains(t, buf.String(), `"msg":"form rejected"`)
		assert.Contains(t, buf.String(), `"fields":["terms"]`)
		assert.Contains(t, buf.String(), `"component":"form"`)
	})
}

func TestForm_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, newForm(validSource()).Validate())
	})

	t.Run("reports one entry per message", func(t *testing.T) {
		t.Parallel()
		src := validSource().
			Set(field.FirstName, "John3").
			Set(field.DOBDay, "40").
			Check(field.Secrets, true)
		f := newForm(src)

		err := f.Validate()
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{rules.MsgFirstNameInvalid}, errs.Get("firstName"))
		assert.Equal(t, []string{rules.MsgInvalidDay}, errs.Get("dob"))
		assert.Equal(t, []string{rules.MsgSecretsFile}, errs.Get("file"))
		assert.False(t, errs.Has("dobDay"))
		assert.Len(t, errs, 3)
	})
}

func TestWithConfig(t *testing.T) {
	t.Parallel()

	cfg := form.DefaultConfig()
	cfg.MinAge = 18
	src := validSource().
		Set(field.Age, "10").
		Set(field.DOBYear, "2014")
	f := newForm(src, form.WithConfig(cfg))

	assert.False(t, f.CheckAll())
	assert.Equal(t, "Age must be between 18 and 120.", src.Message(field.Age))
	assert.Equal(t, "Age must be between 18 and 120.", src.Message(field.DOB))
}
