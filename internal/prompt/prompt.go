// Package prompt collects a feedback payload through interactive terminal
// questions, checking every answer with the form validator as it is given.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"oleander_app_echo/internal/app"
)

type question struct {
	field   app.Field
	message string
	help    string
}

var questions = []question{
	{field: app.FieldName, message: "Name", help: "e.g. John Doe"},
	{field: app.FieldEmail, message: "Email", help: "e.g. john.doe@example.com"},
	{field: app.FieldAge, message: "Age", help: "e.g. 30"},
	{field: app.FieldFeedback, message: "Your Message", help: "Tell us what you think..."},
}

// FieldValidator adapts ValidateField to the error-returning shape prompts
// expect.
func FieldValidator(f app.Field, opts app.Options) func(string) error {
	return func(value string) error {
		if msg, ok := app.ValidateField(f, value, opts); !ok {
			return errors.New(msg)
		}
		return nil
	}
}

// Collect asks for the four fields in display order. Defaults pre-fill the
// answers, which lets a partially valid payload be completed.
func Collect(ctx context.Context, d Driver, defaults app.FormData, opts app.Options) (app.FormData, error) {
	var out app.FormData
	for _, q := range questions {
		var (
			answer string
			err    error
		)
		validate := FieldValidator(q.field, opts)
		if q.field == app.FieldFeedback {
			answer, err = d.TextArea(ctx, TextAreaConfig{
				Message:   q.message,
				Help:      q.help,
				Default:   defaults.Get(q.field),
				Validator: validate,
			})
		} else {
			answer, err = d.Input(ctx, InputConfig{
				Message:   q.message,
				Help:      q.help,
				Default:   defaults.Get(q.field),
				Validator: validate,
			})
		}
		if err != nil {
			return app.FormData{}, fmt.Errorf("ask %s: %w", q.field, err)
		}
		out.Set(q.field, answer)
	}
	return out, nil
}
