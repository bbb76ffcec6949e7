// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers serves the documentation pages. Every page is a pure
// function of the request's query parameters and the built-in content, so
// rendered HTML is cached under a key built from the resolved parameters.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"animdocs/internal/cache"
	"animdocs/internal/config"
	"animdocs/internal/middleware"
	"animdocs/internal/render"
	"animdocs/internal/store"
)

// Settings are the config values the pages depend on. They can change at
// runtime when the config file is edited.
type Settings struct {
	SiteName        string
	SearchPageSize  int
	GalleryPageSize int
	CopyResetDelay  time.Duration
}

// SettingsFrom extracts page settings from the application config.
func SettingsFrom(cfg *config.Config) Settings {
	return Settings{
		SiteName:        cfg.SiteName,
		SearchPageSize:  cfg.SearchPageSize,
		GalleryPageSize: cfg.GalleryPageSize,
		CopyResetDelay:  cfg.CopyResetDelay,
	}
}

// Docs groups the handlers for the public documentation site. It checks
// the page cache before rendering and stores successful renders on miss.
type Docs struct {
	store    *store.DocsStore
	renderer *render.Renderer
	pages    cache.Store
	settings atomic.Pointer[Settings]
}

// NewDocs creates the documentation handler group. pages may be nil to
// disable caching.
func NewDocs(st *store.DocsStore, rn *render.Renderer, pages cache.Store, s Settings) *Docs {
	if pages == nil {
		pages = cache.NewLayered()
	}
	d := &Docs{store: st, renderer: rn, pages: pages}
	d.settings.Store(&s)
	return d
}

// Apply swaps in new settings and clears the page cache, since every
// cached page may depend on the old values.
func (d *Docs) Apply(ctx context.Context, s Settings) {
	d.settings.Store(&s)
	d.pages.InvalidateAll(ctx)
	slog.Info("page settings applied", "search_page_size", s.SearchPageSize, "gallery_page_size", s.GalleryPageSize)
}

func (d *Docs) current() Settings {
	return *d.settings.Load()
}

// pageData starts a PageData with the site-wide fields filled in.
func (d *Docs) pageData(s Settings, section, title string, view any) *render.PageData {
	return &render.PageData{
		Title:       title,
		Section:     section,
		SiteName:    s.SiteName,
		CopyResetMs: int(s.CopyResetDelay / time.Millisecond),
		Data:        view,
	}
}

// cached writes the page stored under key, if any.
func (d *Docs) cached(w http.ResponseWriter, r *http.Request, key string) bool {
	html, ok := d.pages.Get(r.Context(), key)
	if !ok {
		return false
	}
	w.Header().Set("X-Cache", "HIT")
	render.Write(w, http.StatusOK, html)
	return true
}

// respond renders the named page, caches it under key when the status is
// 200 and key is set, and writes it.
func (d *Docs) respond(w http.ResponseWriter, r *http.Request, key string, status int, name string, data *render.PageData) {
	html, err := d.renderer.Render(name, data)
	if err != nil {
		slog.Error("render page failed",
			"request_id", middleware.RequestIDFrom(r.Context()),
			"template", name,
			"error", err,
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if status == http.StatusOK && key != "" {
		d.pages.Set(r.Context(), key, html)
		w.Header().Set("X-Cache", "MISS")
	}
	render.Write(w, status, html)
}
