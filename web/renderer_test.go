package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testButton struct {
	Instance, Target, Label string
}

type testPage struct {
	Title, ActiveNav, View, Instance string
	Data                             interface{}
}

func (p testPage) Button(target, label string) testButton {
	return testButton{Instance: p.Instance, Target: target, Label: label}
}

func render(t *testing.T, r *TemplateRenderer, name string, data interface{}) (string, error) {
	t.Helper()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	var buf bytes.Buffer
	err := r.Render(&buf, name, data, c)
	return buf.String(), err
}

func TestEmbeddedTemplatesParse(t *testing.T) {
	r, err := NewTemplateRenderer(Templates)
	require.NoError(t, err)

	for _, page := range []string{"home.html", "form.html", "confirmation.html", "about.html"} {
		assert.True(t, r.Has(page), page)
	}
}

func TestRenderHomeInsideLayout(t *testing.T) {
	r := MustTemplateRenderer()

	body, err := render(t, r, "home.html", testPage{Title: "Home", ActiveNav: "home", View: "home", Instance: "abc"})
	require.NoError(t, err)

	assert.Contains(t, body, "<title>Home | Oleander Catering Services</title>")
	assert.Contains(t, body, `data-view="home"`)
	assert.Contains(t, body, `<button type="submit" name="target" value="about"`)
	assert.Contains(t, body, `<input type="hidden" name="target" value="form">`)
	assert.Contains(t, body, "Get Started")
}

func TestRenderEscapesPayload(t *testing.T) {
	r := MustTemplateRenderer()

	data := testPage{
		Title:    "Thank You",
		View:     "confirmation",
		Instance: "abc",
		Data: struct {
			Payload struct{ Name, Email, Age, Feedback string }
		}{
			Payload: struct{ Name, Email, Age, Feedback string }{
				Name: "<b>Jane</b>", Email: "j@x.io", Age: "30", Feedback: "a & b",
			},
		},
	}
	body, err := render(t, r, "confirmation.html", data)
	require.NoError(t, err)

	assert.Contains(t, body, "&lt;b&gt;Jane&lt;/b&gt;")
	assert.Contains(t, body, "a &amp; b")
	assert.Contains(t, body, "Go Back to Home")
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := MustTemplateRenderer()
	_, err := render(t, r, "settings.html", testPage{})

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}

func TestNewTemplateRendererReportsBadPages(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/layouts/base.html": {Data: []byte(`{{define "base"}}{{template "content" .}}{{end}}`)},
		"templates/partials/nav.html": {Data: []byte(`{{define "nav"}}{{end}}`)},
		"templates/pages/broken.html": {Data: []byte(`{{define "content"}}{{if}}{{end}}`)},
	}

	_, err := NewTemplateRenderer(fsys)
	assert.Error(t, err)
}
