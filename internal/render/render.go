// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the documentation
// pages. Every page template is paired with the base layout and the shared
// component partials, and rendered into a buffer so a template error never
// produces half a page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"
)

//go:embed templates/*.html templates/partials/*.html
var templateFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title       string  // Page title for the <title> tag
	Section     string  // Active nav section ("home", "api", "guides", "examples", "search")
	SiteName    string  // Brand shown in the header and <title>
	Query       string  // Prefills the header search box
	CopyResetMs int     // How long a copy button shows its check mark
	Crumbs      []Crumb // Breadcrumb trail; empty hides it
	Year        int     // Footer copyright year
	Data        any     // Page-specific view
}

// Renderer handles template parsing and execution for documentation pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses every page template in the embedded filesystem, each paired
// with base.html and the partials.
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template)}

	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" || path.Ext(name) != ".html" {
			continue
		}

		tmpl, err := template.New("base.html").Funcs(funcMap()).ParseFS(
			templateFS,
			"templates/base.html",
			"templates/partials/*.html",
			"templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		r.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return r, nil
}

// Has reports whether a page template with the given name was parsed.
func (rn *Renderer) Has(name string) bool {
	_, ok := rn.templates[name]
	return ok
}

// Render executes the named page inside the base layout and returns the HTML.
func (rn *Renderer) Render(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Write sends rendered HTML with the given status.
func Write(w http.ResponseWriter, status int, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(html)
}
