package app

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Validation messages shown beneath failing inputs.
const (
	MsgNameRequired     = "Name is required."
	MsgEmailRequired    = "Email is required."
	MsgEmailInvalid     = "Email address is invalid."
	MsgAgeRequired      = "Age is required."
	MsgAgeNotPositive   = "Age must be a positive number."
	MsgFeedbackRequired = "Feedback message is required."
)

// AgeMode selects how the age field is parsed.
type AgeMode int

const (
	// AgeLoose accepts anything the browser would coerce to a number whose
	// integer prefix is at least 1, e.g. "5.5", "0x10" or "1e3".
	AgeLoose AgeMode = iota
	// AgeStrict accepts only a base-10 integer >= 1.
	AgeStrict
)

func (m AgeMode) String() string {
	if m == AgeStrict {
		return "strict"
	}
	return "loose"
}

// ParseAgeMode accepts "loose", "strict" or the empty string (loose).
func ParseAgeMode(s string) (AgeMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "loose":
		return AgeLoose, true
	case "strict":
		return AgeStrict, true
	}
	return AgeLoose, false
}

// Options tune the validator.
type Options struct {
	Age AgeMode
}

// Validate checks every field with the default options.
func Validate(form FormData) ErrorMap {
	return ValidateWith(form, Options{})
}

// ValidateWith checks all four fields independently and returns the failures.
// An empty map means the form is valid.
func ValidateWith(form FormData, opts Options) ErrorMap {
	errs := make(ErrorMap)
	for _, f := range Fields {
		if msg, ok := ValidateField(f, form.Get(f), opts); !ok {
			errs[f] = msg
		}
	}
	return errs
}

// ValidateField checks a single value. It returns the message and false when
// the value fails.
func ValidateField(f Field, value string, opts Options) (string, bool) {
	blank := trimJS(value) == ""
	switch f {
	case FieldName:
		if blank {
			return MsgNameRequired, false
		}
	case FieldEmail:
		if blank {
			return MsgEmailRequired, false
		}
		if !emailPattern.MatchString(value) {
			return MsgEmailInvalid, false
		}
	case FieldAge:
		if blank {
			return MsgAgeRequired, false
		}
		if !ageAccepted(value, opts.Age) {
			return MsgAgeNotPositive, false
		}
	case FieldFeedback:
		if blank {
			return MsgFeedbackRequired, false
		}
	}
	return "", true
}

// nonSpace mirrors \S in browser regular expressions, which also excludes
// Unicode space separators and the BOM.
const nonSpace = `[^\s\x0B\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

// emailPattern is deliberately unanchored: "x a@b.c y" passes.
var emailPattern = regexp.MustCompile(nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+`)

var (
	decimalLiteral    = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)$`)
	nonDecimalLiteral = regexp.MustCompile(`^0(?:[xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

func ageAccepted(value string, mode AgeMode) bool {
	if mode == AgeStrict {
		n, err := strconv.Atoi(trimJS(value))
		return err == nil && n >= 1
	}
	// A value is rejected when it is not a number at all, or when its integer
	// prefix is below one. An integer prefix that does not exist (".5",
	// "Infinity") never compares below one, so those are accepted.
	if numberIsNaN(value) {
		return false
	}
	n := parseIntPrefix(value)
	return math.IsNaN(n) || n >= 1
}

func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00A0', '\u1680',
		'\u2028', '\u2029', '\u202F', '\u205F', '\u3000', '\uFEFF':
		return true
	}
	return r >= '\u2000' && r <= '\u200A'
}

func trimJS(s string) string {
	return strings.TrimFunc(s, isJSSpace)
}

// numberIsNaN reports whether numeric coercion of s fails.
func numberIsNaN(s string) bool {
	t := trimJS(s)
	if t == "" {
		return false
	}
	return !decimalLiteral.MatchString(t) && !nonDecimalLiteral.MatchString(t)
}

// parseIntPrefix parses the leading integer of s (base 10, or base 16 after
// a 0x prefix) and returns NaN when there is none.
func parseIntPrefix(s string) float64 {
	t := strings.TrimLeftFunc(s, isJSSpace)
	sign := 1.0
	if t != "" && (t[0] == '+' || t[0] == '-') {
		if t[0] == '-' {
			sign = -1
		}
		t = t[1:]
	}
	base := 10
	if len(t) >= 2 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		base = 16
		t = t[2:]
	}

	value, digits := 0.0, 0
	for _, r := range t {
		d := digitValue(r)
		if d < 0 || d >= base {
			break
		}
		value = value*float64(base) + float64(d)
		digits++
	}
	if digits == 0 {
		return math.NaN()
	}
	return sign * value
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	}
	return -1
}
