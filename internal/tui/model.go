// Package tui renders the feedback application in a terminal with
// bubbletea. Key presses become app messages; the screen is always a pure
// function of the app state plus the live text inputs.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"oleander_app_echo/internal/app"
	"oleander_app_echo/internal/services"
)

// submitDoneMsg reports the outcome of handing a payload to the submitter.
type submitDoneMsg struct {
	err error
}

// Model is the bubbletea model for the whole application.
type Model struct {
	state     app.State
	opts      app.Options
	submitter services.Submitter
	styles    Styles

	inputs   []textinput.Model // name, email, age
	feedback textarea.Model
	focus    int

	submitErr error
	width     int
}

// New returns a model on the home view.
func New(opts app.Options, submitter services.Submitter) Model {
	m := Model{
		state:     app.NewState(),
		opts:      opts,
		submitter: submitter,
		styles:    DefaultStyles(),
	}

	placeholders := []string{"John Doe", "john.doe@example.com", "30"}
	for _, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.Prompt = "> "
		m.inputs = append(m.inputs, ti)
	}

	m.feedback = textarea.New()
	m.feedback.Placeholder = "Tell us what you think..."
	m.feedback.ShowLineNumbers = false
	m.feedback.SetHeight(4)

	return m
}

// State exposes the current application state.
func (m Model) State() app.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		inner := msg.Width - 12
		if inner < 20 {
			inner = 20
		}
		for i := range m.inputs {
			m.inputs[i].Width = inner
		}
		m.feedback.SetWidth(inner)
		return m, nil

	case submitDoneMsg:
		m.submitErr = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "f1":
		return m.dispatch(app.NavigateTo{Target: app.ViewHome})
	case "f2":
		return m.dispatch(app.NavigateTo{Target: app.ViewForm})
	case "f3":
		return m.dispatch(app.NavigateTo{Target: app.ViewAbout})
	}

	switch m.state.View {
	case app.ViewHome:
		if msg.String() == "enter" {
			return m.dispatch(app.NavigateTo{Target: app.ViewForm})
		}
	case app.ViewAbout, app.ViewConfirmation:
		if msg.String() == "enter" {
			return m.dispatch(app.NavigateTo{Target: app.ViewHome})
		}
	case app.ViewForm:
		return m.handleFormKey(msg)
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.dispatch(app.NavigateTo{Target: app.ViewHome})
	case "ctrl+s":
		return m.dispatch(app.SubmitForm{})
	case "tab":
		return m, m.setFocus((m.focus + 1) % len(app.Fields))
	case "shift+tab":
		return m, m.setFocus((m.focus + len(app.Fields) - 1) % len(app.Fields))
	case "enter":
		if m.focus < len(m.inputs) {
			return m, m.setFocus(m.focus + 1)
		}
	}

	field := app.Fields[m.focus]
	before := m.value(m.focus)

	var cmd tea.Cmd
	if m.focus < len(m.inputs) {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	} else {
		m.feedback, cmd = m.feedback.Update(msg)
	}

	if after := m.value(m.focus); after != before {
		next, effectCmd := m.dispatch(app.FieldChanged{Field: field, Value: after})
		return next, tea.Batch(cmd, effectCmd)
	}
	return m, cmd
}

// dispatch runs one app message and resynchronizes the inputs when the view
// changes.
func (m Model) dispatch(msg app.Msg) (Model, tea.Cmd) {
	prev := m.state.View
	next, effect := app.UpdateWith(m.state, msg, m.opts)
	m.state = next

	var cmds []tea.Cmd
	if next.View != prev {
		m.syncInputs()
		if next.View == app.ViewForm {
			cmds = append(cmds, m.setFocus(0))
		}
	}
	if submitted, ok := effect.(app.Submitted); ok {
		m.submitErr = nil
		cmds = append(cmds, m.submitCmd(submitted.Payload))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) submitCmd(payload app.FormData) tea.Cmd {
	submitter := m.submitter
	if submitter == nil {
		return nil
	}
	return func() tea.Msg {
		return submitDoneMsg{err: submitter.Submit(context.Background(), payload)}
	}
}

// syncInputs copies the form values from the state into the widgets.
func (m *Model) syncInputs() {
	for i := range m.inputs {
		m.inputs[i].SetValue(m.state.Form.Get(app.Fields[i]))
	}
	m.feedback.SetValue(m.state.Form.Feedback)
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.feedback.Blur()

	if i < len(m.inputs) {
		return m.inputs[i].Focus()
	}
	return m.feedback.Focus()
}

func (m Model) value(i int) string {
	if i < len(m.inputs) {
		return m.inputs[i].Value()
	}
	return m.feedback.Value()
}
