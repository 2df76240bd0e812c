package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oleander_app_echo/internal/app"
)

// scriptedDriver answers prompts from a queue, retrying each answer the way
// survey does when the validator rejects it.
type scriptedDriver struct {
	answers  map[string][]string
	asked    []string
	defaults map[string]string
	rejected map[string][]string
	fail     map[string]error
}

func newScriptedDriver(answers map[string][]string) *scriptedDriver {
	return &scriptedDriver{
		answers:  answers,
		defaults: map[string]string{},
		rejected: map[string][]string{},
		fail:     map[string]error{},
	}
}

func (d *scriptedDriver) ask(ctx context.Context, message, def string, validate func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	d.asked = append(d.asked, message)
	d.defaults[message] = def
	if err, ok := d.fail[message]; ok {
		return "", err
	}
	for len(d.answers[message]) > 0 {
		answer := d.answers[message][0]
		d.answers[message] = d.answers[message][1:]
		if answer == "" {
			answer = def
		}
		if err := validate(answer); err != nil {
			d.rejected[message] = append(d.rejected[message], err.Error())
			continue
		}
		return answer, nil
	}
	return "", errors.New("script exhausted for " + message)
}

func (d *scriptedDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	return d.ask(ctx, cfg.Message, cfg.Default, cfg.Validator)
}

func (d *scriptedDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	return d.ask(ctx, cfg.Message, cfg.Default, cfg.Validator)
}

func TestCollectAsksInDisplayOrder(t *testing.T) {
	d := newScriptedDriver(map[string][]string{
		"Name":         {"Jane"},
		"Email":        {"jane@example.com"},
		"Age":          {"30"},
		"Your Message": {"Great food!"},
	})

	got, err := Collect(context.Background(), d, app.FormData{}, app.Options{})

	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Email", "Age", "Your Message"}, d.asked)
	assert.Equal(t, app.FormData{Name: "Jane", Email: "jane@example.com", Age: "30", Feedback: "Great food!"}, got)
	assert.Empty(t, app.Validate(got))
}

func TestCollectRetriesRejectedAnswers(t *testing.T) {
	d := newScriptedDriver(map[string][]string{
		"Name":         {"   ", "Jane"},
		"Email":        {"jane", "jane@example.com"},
		"Age":          {"0", "abc", "30"},
		"Your Message": {"\n", "ok"},
	})

	got, err := Collect(context.Background(), d, app.FormData{}, app.Options{})

	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Name)
	assert.Equal(t, []string{app.MsgNameRequired}, d.rejected["Name"])
	assert.Equal(t, []string{app.MsgEmailInvalid}, d.rejected["Email"])
	assert.Equal(t, []string{app.MsgAgeNotPositive, app.MsgAgeNotPositive}, d.rejected["Age"])
	assert.Equal(t, []string{app.MsgFeedbackRequired}, d.rejected["Your Message"])
}

func TestCollectUsesDefaults(t *testing.T) {
	d := newScriptedDriver(map[string][]string{
		"Name":         {""},
		"Email":        {""},
		"Age":          {"", "41"},
		"Your Message": {""},
	})
	defaults := app.FormData{Name: "Jane", Email: "jane@example.com", Age: "-1", Feedback: "ok"}

	got, err := Collect(context.Background(), d, defaults, app.Options{})

	require.NoError(t, err)
	assert.Equal(t, "Jane", d.defaults["Name"])
	assert.Equal(t, app.FormData{Name: "Jane", Email: "jane@example.com", Age: "41", Feedback: "ok"}, got)
}

func TestCollectStrictAge(t *testing.T) {
	d := newScriptedDriver(map[string][]string{
		"Name":         {"Jane"},
		"Email":        {"jane@example.com"},
		"Age":          {"5.5", "5"},
		"Your Message": {"ok"},
	})

	got, err := Collect(context.Background(), d, app.FormData{}, app.Options{Age: app.AgeStrict})

	require.NoError(t, err)
	assert.Equal(t, "5", got.Age)
	assert.Equal(t, []string{app.MsgAgeNotPositive}, d.rejected["Age"])
}

func TestCollectAborted(t *testing.T) {
	d := newScriptedDriver(map[string][]string{"Name": {"Jane"}})
	d.fail["Email"] = ErrAborted

	_, err := Collect(context.Background(), d, app.FormData{}, app.Options{})

	require.ErrorIs(t, err, ErrAborted)
	assert.Contains(t, err.Error(), "ask email")
}

func TestCollectCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Collect(ctx, NewSurveyDriver(), app.FormData{}, app.Options{})

	require.ErrorIs(t, err, context.Canceled)
}

func TestFieldValidator(t *testing.T) {
	validate := FieldValidator(app.FieldEmail, app.Options{})
	assert.NoError(t, validate("a@b.co"))
	assert.EqualError(t, validate(""), app.MsgEmailRequired)
	assert.EqualError(t, validate("nope"), app.MsgEmailInvalid)
}
