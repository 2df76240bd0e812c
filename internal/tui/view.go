package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"oleander_app_echo/internal/app"
)

var fieldLabels = map[app.Field]string{
	app.FieldName:     "Name",
	app.FieldEmail:    "Email",
	app.FieldAge:      "Age",
	app.FieldFeedback: "Your Message",
}

type navEntry struct {
	key   string
	label string
	view  app.View
}

var navEntries = []navEntry{
	{key: "F1", label: "Home", view: app.ViewHome},
	{key: "F2", label: "Feedback Form", view: app.ViewForm},
	{key: "F3", label: "About Us", view: app.ViewAbout},
}

func (m Model) View() string {
	var body string
	switch m.state.View {
	case app.ViewForm:
		body = m.formView()
	case app.ViewConfirmation:
		body = m.confirmationView()
	case app.ViewAbout:
		body = m.aboutView()
	default:
		body = m.homeView()
	}

	hint := m.styles.Hint.Render("ctrl+c quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.navView(), m.styles.Card.Render(body), hint) + "\n"
}

func (m Model) navView() string {
	items := make([]string, 0, len(navEntries)+1)
	items = append(items, m.styles.NavItem.Bold(true).Render("Oleander"))
	for _, e := range navEntries {
		style := m.styles.NavItem
		if e.view == m.state.View {
			style = m.styles.NavActive
		}
		items = append(items, style.Render(e.key+" "+e.label))
	}
	return m.styles.Nav.Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}

func (m Model) homeView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Welcome to Oleander Catering Services!"),
		m.styles.Body.Render("This is a Bill of Quantity Application."),
		"",
		m.button("Get Started", "enter"),
	)
}

func (m Model) aboutView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("About Us"),
		m.styles.Body.Render("We are a passionate team dedicated to creating amazing applications."),
		m.styles.Body.Render("Our goal is to develop a functional and aesthetic bill of quantity web application for Oleander Catering services."),
		"",
		m.styles.Body.Render("Be on the Watchout for the first version of Oleander Catering Services Bill of Quantity Web Application."),
		"",
		m.button("Back to Home", "enter"),
	)
}

func (m Model) formView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Your Information"))
	b.WriteString("\n")

	for i, f := range app.Fields {
		b.WriteString(m.styles.Label.Render(fieldLabels[f]))
		b.WriteString("\n")
		if i < len(m.inputs) {
			b.WriteString(m.inputs[i].View())
		} else {
			b.WriteString(m.feedback.View())
		}
		b.WriteString("\n")
		if msg, ok := m.state.Errors[f]; ok {
			b.WriteString(m.styles.Error.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.secondaryButton("Back to Home", "esc"),
		"  ",
		m.button("Submit", "ctrl+s"),
	))
	b.WriteString("\n")
	b.WriteString(m.styles.Hint.Render("tab/shift+tab move between fields"))
	return b.String()
}

func (m Model) confirmationView() string {
	var payload app.FormData
	if m.state.Submitted != nil {
		payload = *m.state.Submitted
	}

	lines := []string{
		m.styles.Title.Render("Thank You for Your Feedback!"),
		m.styles.Body.Render("We've received your information:"),
		"",
		m.styles.Label.Render("Name:") + " " + payload.Name,
		m.styles.Label.Render("Email:") + " " + payload.Email,
		m.styles.Label.Render("Age:") + " " + payload.Age,
		m.styles.Label.Render("Message:") + " " + payload.Feedback,
		"",
	}
	if m.submitErr != nil {
		lines = append(lines, m.styles.Error.Render("Could not record submission: "+m.submitErr.Error()), "")
	}
	lines = append(lines, m.button("Go Back to Home", "enter"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) button(label, key string) string {
	return m.styles.Button.Render(label) + " " + m.styles.Hint.Render(key)
}

func (m Model) secondaryButton(label, key string) string {
	return m.styles.Secondary.Render(label) + " " + m.styles.Hint.Render(key)
}
