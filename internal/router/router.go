// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and the middleware chain for the
// documentation site.
package router

import (
	"bytes"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"animdocs/internal/handlers"
	"animdocs/internal/highlight"
	"animdocs/internal/middleware"
	"animdocs/web"
)

// ChromaCSSPath serves the stylesheet for highlighted code blocks.
const ChromaCSSPath = "/static/css/chroma.css"

// New creates the configured chi router. limiter may be nil to leave the
// search page unthrottled.
func New(docs *handlers.Docs, limiter *middleware.RateLimiter) (chi.Router, error) {
	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("open static assets: %w", err)
	}

	var css bytes.Buffer
	if err := highlight.CSS(&css); err != nil {
		return nil, fmt.Errorf("generate highlight stylesheet: %w", err)
	}

	r := chi.NewRouter()

	// Global middleware, applied to every request.
	// RequestID runs first so the recoverer can report the id.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	r.Get(ChromaCSSPath, stylesheet(css.Bytes()))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	r.Get(handlers.PathHome, docs.Homepage)
	r.Get(handlers.PathAPI, docs.APIDetail)
	r.Get(handlers.PathGuides, docs.GuidesListing)
	r.Get(handlers.PathGuides+"/{slug}", docs.Guide)
	r.Get(handlers.PathExamples, docs.ExamplesGallery)
	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		r.Get(handlers.PathSearch, docs.Search)
	})

	r.NotFound(docs.NotFound)

	return r, nil
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func stylesheet(body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write(body)
	}
}
