package app

// Msg is a user action processed by Update.
type Msg interface {
	isMsg()
}

// NavigateTo switches the active view.
type NavigateTo struct {
	Target View
}

// FieldChanged records a keystroke-level edit of one input.
type FieldChanged struct {
	Field Field
	Value string
}

// SubmitForm runs validation and, if it passes, shows the confirmation.
type SubmitForm struct{}

func (NavigateTo) isMsg()   {}
func (FieldChanged) isMsg() {}
func (SubmitForm) isMsg()   {}

// Effect is work Update asks its caller to perform. It is nil for most
// messages.
type Effect interface {
	isEffect()
}

// Submitted is emitted once per accepted submission.
type Submitted struct {
	Payload FormData
}

func (Submitted) isEffect() {}

// Update applies msg to s and returns the next state. The input state is
// never modified; maps are copied before they change.
func Update(s State, msg Msg) (State, Effect) {
	return UpdateWith(s, msg, Options{})
}

// UpdateWith is Update with explicit validator options.
func UpdateWith(s State, msg Msg, opts Options) (State, Effect) {
	switch m := msg.(type) {
	case NavigateTo:
		return navigate(s, m.Target), nil
	case FieldChanged:
		return changeField(s, m), nil
	case SubmitForm:
		return submit(s, opts)
	}
	return s, nil
}

func navigate(s State, target View) State {
	if !target.Valid() {
		return s
	}
	s.View = target
	if target != ViewForm {
		s.Form = FormData{}
		s.Errors = ErrorMap{}
	}
	if target != ViewConfirmation {
		s.Submitted = nil
	}
	return s
}

func changeField(s State, m FieldChanged) State {
	if !m.Field.Valid() {
		return s
	}
	s.Form.Set(m.Field, m.Value)
	if s.HasError(m.Field) {
		s.Errors = s.Errors.Clone()
		delete(s.Errors, m.Field)
	}
	return s
}

func submit(s State, opts Options) (State, Effect) {
	if s.View != ViewForm {
		return s, nil
	}
	errs := ValidateWith(s.Form, opts)
	if len(errs) > 0 {
		s.Errors = errs
		return s, nil
	}
	payload := s.Form
	s = navigate(s, ViewConfirmation)
	s.Submitted = &payload
	return s, Submitted{Payload: payload}
}
