// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"animdocs/internal/handlers"
	"animdocs/internal/render"
	"animdocs/internal/router"
	"animdocs/internal/store"
	"animdocs/web"
)

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the default view of every page to static files",
		Long: `Export renders each page with its default parameters, every guide,
the not-found page and the static assets into a directory that any
static file host can serve.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.export(out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	return cmd
}

// exportPage is one request to render and the file it is saved to.
type exportPage struct {
	target string
	file   string
	status int
}

func (a *app) export(out string) error {
	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("initialize template renderer: %w", err)
	}
	st := store.New()
	docs := handlers.NewDocs(st, renderer, nil, handlers.SettingsFrom(a.cfg))
	r, err := router.New(docs, nil)
	if err != nil {
		return err
	}

	if err := exportSite(r, exportPages(st), out); err != nil {
		return err
	}
	slog.Info("site exported", "dir", out)
	return nil
}

func exportPages(st *store.DocsStore) []exportPage {
	pages := []exportPage{
		{target: handlers.PathHome, file: "index.html", status: http.StatusOK},
		{target: handlers.PathAPI, file: "a-p-i-detail/index.html", status: http.StatusOK},
		{target: handlers.PathGuides, file: "guides-listing/index.html", status: http.StatusOK},
		{target: handlers.PathExamples, file: "examples-gallery/index.html", status: http.StatusOK},
		{target: handlers.PathSearch, file: "search/index.html", status: http.StatusOK},
		{target: "/404", file: "404.html", status: http.StatusNotFound},
		{target: router.ChromaCSSPath, file: "static/css/chroma.css", status: http.StatusOK},
	}
	for _, g := range st.Guides() {
		pages = append(pages, exportPage{
			target: g.DocLink(),
			file:   filepath.Join("guides-listing", g.Slug, "index.html"),
			status: http.StatusOK,
		})
	}
	return pages
}

// exportSite renders every page through h and copies the embedded static
// assets next to them.
func exportSite(h http.Handler, pages []exportPage, out string) error {
	for _, p := range pages {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p.target, nil))
		if rec.Code != p.status {
			return fmt.Errorf("export %s: got status %d, want %d", p.target, rec.Code, p.status)
		}
		if err := writeFile(filepath.Join(out, p.file), rec.Body.Bytes()); err != nil {
			return err
		}
		slog.Debug("page exported", "target", p.target, "file", p.file)
	}

	return fs.WalkDir(web.StaticFS, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(web.StaticFS, path)
		if err != nil {
			return err
		}
		return writeFile(filepath.Join(out, filepath.FromSlash(path)), data)
	})
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", strings.TrimPrefix(path, "./"), err)
	}
	return nil
}
