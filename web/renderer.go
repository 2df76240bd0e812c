package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer is a custom html/template renderer for Echo
// Uses per-page template cloning to allow each page to define its own blocks
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// NewTemplateRenderer parses layouts and partials once, then clones them for
// every page under templates/pages.
func NewTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	templates := make(map[string]*template.Template)

	// Parse base layout and partials as the foundation
	baseTemplate, err := template.ParseFS(fsys, "templates/layouts/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}
	if _, err := baseTemplate.ParseFS(fsys, "templates/partials/*.html"); err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}

	pages, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		pageTemplate, err := baseTemplate.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := pageTemplate.ParseFS(fsys, page); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", page, err)
		}
		templates[path.Base(page)] = pageTemplate
	}

	return &TemplateRenderer{templates: templates}, nil
}

// MustTemplateRenderer is NewTemplateRenderer over the embedded templates,
// panicking on parse errors.
func MustTemplateRenderer() *TemplateRenderer {
	r, err := NewTemplateRenderer(Templates)
	if err != nil {
		panic(err)
	}
	return r
}

// Has reports whether a page template called name exists.
func (t *TemplateRenderer) Has(name string) bool {
	_, ok := t.templates[name]
	return ok
}

// Render renders a page inside the base layout
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}
