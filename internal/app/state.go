package app

// State is everything a front end needs to render the current screen.
type State struct {
	View   View     `json:"view"`
	Form   FormData `json:"form"`
	Errors ErrorMap `json:"errors,omitempty"`
	// Submitted is the payload shown on the confirmation screen. It survives
	// the form reset that happens when leaving the form view.
	Submitted *FormData `json:"submitted,omitempty"`
}

// NewState returns the state at application start.
func NewState() State {
	return State{View: ViewHome, Errors: ErrorMap{}}
}

// HasError reports whether f currently carries a validation message.
func (s State) HasError(f Field) bool {
	_, ok := s.Errors[f]
	return ok
}

// Payload returns the submitted values, or an empty record when nothing has
// been submitted in this session.
func (s State) Payload() FormData {
	if s.Submitted == nil {
		return FormData{}
	}
	return *s.Submitted
}
