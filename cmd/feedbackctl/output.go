package main

import (
	"encoding/json"
	"fmt"
	"io"

	"oleander_app_echo/internal/app"
	"oleander_app_echo/internal/payload"
)

type fieldError struct {
	Field   app.Field `json:"field"`
	Message string    `json:"message"`
}

type result struct {
	Valid   bool          `json:"valid"`
	Errors  []fieldError  `json:"errors"`
	Payload *app.FormData `json:"payload,omitempty"`
}

func newResult(state app.State) result {
	r := result{Valid: len(state.Errors) == 0, Errors: []fieldError{}}
	for _, f := range state.Errors.Ordered() {
		r.Errors = append(r.Errors, fieldError{Field: f, Message: state.Errors[f]})
	}
	if r.Valid && state.Submitted != nil {
		p := *state.Submitted
		r.Payload = &p
	}
	return r
}

// writeResult prints the outcome of a handshake. Errors come out in form
// order; a valid payload prints the confirmation summary.
func writeResult(w io.Writer, format string, state app.State) error {
	r := newResult(state)

	if format == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if !r.Valid {
		for _, fe := range r.Errors {
			if _, err := fmt.Fprintf(w, "%s: %s\n", fe.Field, fe.Message); err != nil {
				return err
			}
		}
		return nil
	}

	if _, err := fmt.Fprintln(w, "Thank You for Your Feedback!"); err != nil {
		return err
	}
	p := r.Payload
	if p == nil {
		p = &app.FormData{}
	}
	_, err := fmt.Fprintf(w, "Name: %s\nEmail: %s\nAge: %s\nMessage: %s\n", p.Name, p.Email, p.Age, p.Feedback)
	return err
}

func loadDefaults(file string, stdin io.Reader) (app.FormData, error) {
	if file == "" {
		return app.FormData{}, nil
	}
	d, err := payload.LoadFile(file, stdin)
	if err != nil {
		return app.FormData{}, fmt.Errorf("load %s: %w", file, err)
	}
	return d, nil
}
