// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the page handler
// tests. Everything runs in memory; no external services are needed.
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"animdocs/internal/cache"
	"animdocs/internal/render"
	"animdocs/internal/store"
)

// testEnv holds a handler group wired to an in-memory page cache.
type testEnv struct {
	Docs   *Docs
	Cache  *cache.MemoryCache
	Router http.Handler
}

func testSettings() Settings {
	return Settings{
		SiteName:        "AnimDocs",
		SearchPageSize:  3,
		GalleryPageSize: 2,
		CopyResetDelay:  2 * time.Second,
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	rn, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	mem := cache.NewMemoryCache(time.Minute, 64)
	docs := NewDocs(store.New(), rn, mem, testSettings())

	r := chi.NewRouter()
	r.Get(PathHome, docs.Homepage)
	r.Get(PathAPI, docs.APIDetail)
	r.Get(PathGuides, docs.GuidesListing)
	r.Get(PathGuides+"/{slug}", docs.Guide)
	r.Get(PathExamples, docs.ExamplesGallery)
	r.Get(PathSearch, docs.Search)
	r.NotFound(docs.NotFound)

	return &testEnv{Docs: docs, Cache: mem, Router: r}
}

// get performs a GET against the test router.
func (e *testEnv) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.Router.ServeHTTP(rec, req)
	return rec
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status: got %d, want %d", rec.Code, want)
	}
}

func assertContains(t *testing.T, body, want string) {
	t.Helper()
	if !strings.Contains(body, want) {
		t.Errorf("response body should contain %q", want)
	}
}

func assertNotContains(t *testing.T, body, unwanted string) {
	t.Helper()
	if strings.Contains(body, unwanted) {
		t.Errorf("response body should not contain %q", unwanted)
	}
}
