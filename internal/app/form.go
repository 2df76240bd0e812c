package app

import "fmt"

// Field names one of the four form inputs.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldAge      Field = "age"
	FieldFeedback Field = "feedback"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldAge, FieldFeedback}

// Valid reports whether f is one of the four form inputs.
func (f Field) Valid() bool {
	switch f {
	case FieldName, FieldEmail, FieldAge, FieldFeedback:
		return true
	}
	return false
}

// ParseField validates a raw field name.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown field %q", s)
	}
	return f, nil
}

// FormData holds the values the user has typed so far.
type FormData struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Age      string `json:"age" yaml:"age"`
	Feedback string `json:"feedback" yaml:"feedback"`
}

// Get returns the value bound to f. Unknown fields read as empty.
func (d FormData) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldAge:
		return d.Age
	case FieldFeedback:
		return d.Feedback
	}
	return ""
}

// Set stores value under f and reports whether f was recognized.
func (d *FormData) Set(f Field, value string) bool {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldAge:
		d.Age = value
	case FieldFeedback:
		d.Feedback = value
	default:
		return false
	}
	return true
}

// ErrorMap maps a failing field to its message. Valid fields have no entry.
type ErrorMap map[Field]string

// Clone returns an independent copy; a nil map clones to an empty one.
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Ordered returns the failing fields in display order.
func (m ErrorMap) Ordered() []Field {
	var out []Field
	for _, f := range Fields {
		if _, ok := m[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
