// Package view renders the server-side HTML pages.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"canteen/internal/model"
	"canteen/internal/session"
)

//go:embed templates/*.html
var files embed.FS

// Page names.
const (
	PageIndex   = "index.html"
	PageCart    = "cart.html"
	PageSuccess = "success.html"
	PageAdmin   = "admin_panel.html"
	PageProfile = "profile.html"
)

var pages = []string{PageIndex, PageCart, PageSuccess, PageAdmin, PageProfile}

// Page is the payload every template receives.
type Page struct {
	User      *model.User
	Flashes   []session.Flash
	CartCount int
	Next      string
	Data      interface{}
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page together with the shared layout. Timestamps
// are shown in loc.
func NewRenderer(loc *time.Location) (*Renderer, error) {
	funcs := template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return d.StringFixed(2) + " ₸"
		},
		"localtime": func(t time.Time) string {
			return t.In(loc).Format("15:04")
		},
		"inc": func(i int) int { return i + 1 },
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

// Location resolves a timezone name, falling back to UTC+5 when the zone
// database is unavailable.
func Location(name string) *time.Location {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("UTC+5", 5*60*60)
}
