package handlers

import "oleander_app_echo/internal/app"

// PageData represents the common data structure passed to templates
// Using this ensures type safety and consistency
type PageData struct {
	Title     string
	ActiveNav string
	View      string
	Instance  string
	Data      interface{} // Page-specific data
}

// NavButton is an in-view button that navigates to Target.
type NavButton struct {
	Instance string
	Target   string
	Label    string
}

// Button builds an in-view navigation button bound to this page's instance.
func (p PageData) Button(target, label string) NavButton {
	return NavButton{Instance: p.Instance, Target: target, Label: label}
}

// FieldView is one rendered form input.
type FieldView struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Value       string
	Error       string
	Multiline   bool
}

// FormPage is the page data of the feedback form.
type FormPage struct {
	Fields []FieldView
}

// ConfirmationPage is the page data of the confirmation screen.
type ConfirmationPage struct {
	Payload app.FormData
}

type fieldSpec struct {
	label       string
	inputType   string
	placeholder string
}

var fieldSpecs = map[app.Field]fieldSpec{
	app.FieldName:     {label: "Name", inputType: "text", placeholder: "John Doe"},
	app.FieldEmail:    {label: "Email", inputType: "email", placeholder: "john.doe@example.com"},
	app.FieldAge:      {label: "Age", inputType: "number", placeholder: "30"},
	app.FieldFeedback: {label: "Your Message", inputType: "textarea", placeholder: "Tell us what you think..."},
}

var viewTitles = map[app.View]string{
	app.ViewHome:         "Home",
	app.ViewForm:         "Feedback Form",
	app.ViewConfirmation: "Thank You",
	app.ViewAbout:        "About Us",
}

func buildFormPage(state app.State) FormPage {
	fields := make([]FieldView, 0, len(app.Fields))
	for _, f := range app.Fields {
		meta := fieldSpecs[f]
		fields = append(fields, FieldView{
			Name:        string(f),
			Label:       meta.label,
			Type:        meta.inputType,
			Placeholder: meta.placeholder,
			Value:       state.Form.Get(f),
			Error:       state.Errors[f],
			Multiline:   meta.inputType == "textarea",
		})
	}
	return FormPage{Fields: fields}
}

func buildPageData(state app.State, instance string) PageData {
	data := PageData{
		Title:     viewTitles[state.View],
		ActiveNav: state.View.String(),
		View:      state.View.String(),
		Instance:  instance,
	}
	switch state.View {
	case app.ViewForm:
		data.Data = buildFormPage(state)
	case app.ViewConfirmation:
		data.Data = ConfirmationPage{Payload: state.Payload()}
	}
	return data
}

func pageTemplate(v app.View) string {
	return v.String() + ".html"
}
