package app

import "fmt"

// View identifies which screen is currently rendered.
type View int

const (
	ViewHome View = iota
	ViewForm
	ViewConfirmation
	ViewAbout
)

var viewNames = map[View]string{
	ViewHome:         "home",
	ViewForm:         "form",
	ViewConfirmation: "confirmation",
	ViewAbout:        "about",
}

// Views lists every view in navigation order.
var Views = []View{ViewHome, ViewForm, ViewConfirmation, ViewAbout}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// Valid reports whether v is one of the known views.
func (v View) Valid() bool {
	_, ok := viewNames[v]
	return ok
}

// ParseView maps the text form of a view back to its value.
func ParseView(s string) (View, error) {
	for v, name := range viewNames {
		if name == s {
			return v, nil
		}
	}
	return ViewHome, fmt.Errorf("unknown view %q", s)
}

func (v View) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("unknown view %d", int(v))
	}
	return []byte(v.String()), nil
}

func (v *View) UnmarshalText(text []byte) error {
	parsed, err := ParseView(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
