package handler

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"user-registry/web"
)

// Renderer adapts the embedded html/template set to echo.Renderer.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(web.Templates, "templates/*.html", "templates/user/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
