package main

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/dmitrymomot/formcheck/pkg/field"
	"github.com/dmitrymomot/formcheck/pkg/form"
	"github.com/dmitrymomot/formcheck/pkg/rules"
	"github.com/dmitrymomot/formcheck/pkg/sanitizer"
	"github.com/dmitrymomot/formcheck/pkg/source"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("formcheck: aborted")

// Prompter asks the user for input. It lets the prompt flow run without a
// terminal in tests.
type Prompter interface {
	Input(ctx context.Context, message string, validate func(string) error) (string, error)
	Confirm(ctx context.Context, message string) (bool, error)
}

var labels = map[field.ID]string{
	field.FirstName:   "First name",
	field.Surname:     "Surname",
	field.Email:       "Email",
	field.Age:         "Age",
	field.DOBDay:      "Birth day (1-31)",
	field.DOBMonth:    "Birth month (1-12)",
	field.DOBYear:     "Birth year",
	field.Country:     "Country",
	field.CountryCode: "Country code (e.g. +44)",
	field.PhoneNumber: "Phone number",
	field.Terms:       "Do you agree to the terms and conditions?",
	field.Secrets:     "Do you want to upload a secrets file?",
	field.File:        "Secrets file",
}

// prompt fills src by asking for every field, checking each answer as it is
// given. The country only has to be non-empty and the code well formed; the
// pairing of the two is checked on submit.
func prompt(ctx context.Context, p Prompter, f *form.Form, src *source.Memory) error {
	for _, id := range field.All() {
		if id == field.Terms {
			continue
		}
		answer, err := p.Input(ctx, labels[id], inputValidator(f, src, id))
		if err != nil {
			return err
		}
		src.SetValue(id, answer)
	}

	agreed, err := p.Confirm(ctx, labels[field.Terms])
	if err != nil {
		return err
	}
	src.Check(field.Terms, agreed)

	reveal, err := p.Confirm(ctx, labels[field.Secrets])
	if err != nil {
		return err
	}
	src.Check(field.Secrets, reveal)
	if !f.ToggleSecrets() {
		return nil
	}

	file, err := p.Input(ctx, labels[field.File], inputValidator(f, src, field.File))
	if err != nil {
		return err
	}
	src.SetValue(field.File, file)
	return nil
}

func inputValidator(f *form.Form, src *source.Memory, id field.ID) func(string) error {
	return func(answer string) error {
		src.SetValue(id, answer)
		switch id {
		case field.Country:
			if sanitizer.Trim(answer) == "" {
				return errors.New(rules.MsgCountryCodeEmpty)
			}
			return nil
		case field.CountryCode:
			// The country prompt is already closed, so a pairing failure here
			// could never be fixed. The pair is reported on submit.
			if res := rules.CountryCode(sanitizer.Trim(answer)); !res.Valid {
				return errors.New(res.Message)
			}
			return nil
		}
		if res := f.Input(id); !res.Valid {
			return errors.New(res.Message)
		}
		return nil
	}
}

type surveyPrompter struct{}

func newSurveyPrompter() Prompter {
	return surveyPrompter{}
}

func (surveyPrompter) Input(ctx context.Context, message string, validate func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := survey.AskOne(&survey.Input{Message: message}, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	if err := survey.AskOne(&survey.Confirm{Message: message}, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
