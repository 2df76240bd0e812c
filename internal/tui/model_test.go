package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oleander_app_echo/internal/app"
)

type recordingSubmitter struct {
	mu       sync.Mutex
	payloads []app.FormData
	err      error
}

func (r *recordingSubmitter) Submit(_ context.Context, payload app.FormData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, payload)
	return r.err
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update must return a tui.Model")
	return out, cmd
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fillForm types the four values, tabbing between inputs.
func fillForm(t *testing.T, m Model, d app.FormData) Model {
	t.Helper()
	for i, f := range app.Fields {
		if v := d.Get(f); v != "" {
			m, _ = press(t, m, typed(v))
		}
		if i < len(app.Fields)-1 {
			m, _ = press(t, m, key(tea.KeyTab))
		}
	}
	return m
}

// runSubmit executes the command returned by a submit and feeds its result
// back into the model.
func runSubmit(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	switch msg := cmd().(type) {
	case submitDoneMsg:
		m, _ = press(t, m, msg)
	case tea.BatchMsg:
		for _, c := range msg {
			if done, ok := c().(submitDoneMsg); ok {
				m, _ = press(t, m, done)
			}
		}
	default:
		t.Fatalf("unexpected message %T", msg)
	}
	return m
}

func TestNewStartsAtHome(t *testing.T) {
	m := New(app.Options{}, nil)
	assert.Equal(t, app.ViewHome, m.State().View)
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "Welcome to Oleander Catering Services!")
	assert.Contains(t, m.View(), "Get Started")
}

func TestNavigationKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyType
		want app.View
	}{
		{name: "get started", keys: []tea.KeyType{tea.KeyEnter}, want: app.ViewForm},
		{name: "f2 form", keys: []tea.KeyType{tea.KeyF2}, want: app.ViewForm},
		{name: "f3 about", keys: []tea.KeyType{tea.KeyF3}, want: app.ViewAbout},
		{name: "about back home", keys: []tea.KeyType{tea.KeyF3, tea.KeyEnter}, want: app.ViewHome},
		{name: "form esc", keys: []tea.KeyType{tea.KeyF2, tea.KeyEsc}, want: app.ViewHome},
		{name: "f1 from form", keys: []tea.KeyType{tea.KeyF2, tea.KeyF1}, want: app.ViewHome},
		{name: "f3 from form", keys: []tea.KeyType{tea.KeyF2, tea.KeyF3}, want: app.ViewAbout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(app.Options{}, nil)
			for _, k := range tt.keys {
				m, _ = press(t, m, key(k))
			}
			assert.Equal(t, tt.want, m.State().View)
		})
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := New(app.Options{}, nil)
	_, cmd := press(t, m, key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSubmitEmptyFormShowsAllErrors(t *testing.T) {
	rec := &recordingSubmitter{}
	m := New(app.Options{}, rec)
	m, _ = press(t, m, key(tea.KeyF2))
	m, cmd := press(t, m, key(tea.KeyCtrlS))

	assert.Nil(t, cmd)
	assert.Equal(t, app.ViewForm, m.State().View)
	assert.Len(t, m.State().Errors, 4)

	out := m.View()
	assert.Contains(t, out, app.MsgNameRequired)
	assert.Contains(t, out, app.MsgEmailRequired)
	assert.Contains(t, out, app.MsgAgeRequired)
	assert.Contains(t, out, app.MsgFeedbackRequired)
	assert.Empty(t, rec.payloads)
}

func TestTypingClearsFieldError(t *testing.T) {
	m := New(app.Options{}, nil)
	m, _ = press(t, m, key(tea.KeyF2))
	m, _ = press(t, m, key(tea.KeyCtrlS))
	require.Contains(t, m.State().Errors, app.FieldName)

	m, _ = press(t, m, typed("J"))

	assert.Equal(t, "J", m.State().Form.Name)
	assert.NotContains(t, m.State().Errors, app.FieldName)
	assert.Contains(t, m.State().Errors, app.FieldEmail)
	assert.NotContains(t, m.View(), app.MsgNameRequired)
}

func TestSuccessfulSubmit(t *testing.T) {
	rec := &recordingSubmitter{}
	m := New(app.Options{}, rec)
	m, _ = press(t, m, key(tea.KeyEnter))

	want := app.FormData{Name: "Jane", Email: "jane@example.com", Age: "30", Feedback: "Great food!"}
	m = fillForm(t, m, want)
	require.Equal(t, want, m.State().Form)

	m, cmd := press(t, m, key(tea.KeyCtrlS))
	require.Equal(t, app.ViewConfirmation, m.State().View)
	m = runSubmit(t, m, cmd)

	require.Len(t, rec.payloads, 1)
	assert.Equal(t, want, rec.payloads[0])

	out := m.View()
	assert.Contains(t, out, "Thank You for Your Feedback!")
	assert.Contains(t, out, "Name: Jane")
	assert.Contains(t, out, "Email: jane@example.com")
	assert.Contains(t, out, "Age: 30")
	assert.Contains(t, out, "Message: Great food!")

	m, _ = press(t, m, key(tea.KeyEnter))
	assert.Equal(t, app.ViewHome, m.State().View)
	assert.Equal(t, app.FormData{}, m.State().Form)
	assert.Nil(t, m.State().Submitted)
}

func TestSubmitterErrorIsShown(t *testing.T) {
	rec := &recordingSubmitter{err: errors.New("boom")}
	m := New(app.Options{}, rec)
	m, _ = press(t, m, key(tea.KeyF2))
	m = fillForm(t, m, app.FormData{Name: "Jane", Email: "jane@example.com", Age: "30", Feedback: "ok"})

	m, cmd := press(t, m, key(tea.KeyCtrlS))
	m = runSubmit(t, m, cmd)

	assert.Equal(t, app.ViewConfirmation, m.State().View)
	assert.Contains(t, m.View(), "boom")
}

func TestLeavingFormResetsInputs(t *testing.T) {
	m := New(app.Options{}, nil)
	m, _ = press(t, m, key(tea.KeyF2))
	m, _ = press(t, m, typed("Jane"))
	m, _ = press(t, m, key(tea.KeyEsc))
	m, _ = press(t, m, key(tea.KeyF2))

	assert.Equal(t, app.FormData{}, m.State().Form)
	assert.Equal(t, "", m.inputs[0].Value())
	assert.Equal(t, 0, m.focus)
}

func TestFocusMovement(t *testing.T) {
	m := New(app.Options{}, nil)
	m, _ = press(t, m, key(tea.KeyF2))
	assert.Equal(t, 0, m.focus)

	m, _ = press(t, m, key(tea.KeyEnter))
	assert.Equal(t, 1, m.focus)

	m, _ = press(t, m, key(tea.KeyShiftTab))
	m, _ = press(t, m, key(tea.KeyShiftTab))
	assert.Equal(t, 3, m.focus)

	m, _ = press(t, m, key(tea.KeyTab))
	assert.Equal(t, 0, m.focus)
}

func TestEnterInFeedbackInsertsNewline(t *testing.T) {
	m := New(app.Options{}, nil)
	m, _ = press(t, m, key(tea.KeyF2))
	for i := 0; i < 3; i++ {
		m, _ = press(t, m, key(tea.KeyTab))
	}
	m, _ = press(t, m, typed("a"))
	m, _ = press(t, m, key(tea.KeyEnter))
	m, _ = press(t, m, typed("b"))

	assert.Equal(t, app.ViewForm, m.State().View)
	assert.Equal(t, "a\nb", m.State().Form.Feedback)
}

func TestStrictAgeMode(t *testing.T) {
	m := New(app.Options{Age: app.AgeStrict}, nil)
	m, _ = press(t, m, key(tea.KeyF2))
	m = fillForm(t, m, app.FormData{Name: "Jane", Email: "jane@example.com", Age: "5.5", Feedback: "ok"})

	m, cmd := press(t, m, key(tea.KeyCtrlS))

	assert.Nil(t, cmd)
	assert.Equal(t, app.ViewForm, m.State().View)
	assert.Equal(t, app.MsgAgeNotPositive, m.State().Errors[app.FieldAge])
}

func TestWindowSizeSetsWidths(t *testing.T) {
	m := New(app.Options{}, nil)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 68, m.inputs[0].Width)
}
