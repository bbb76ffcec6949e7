// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"animdocs/internal/models"
	"animdocs/internal/store"
)

func TestHomepage(t *testing.T) {
	env := newTestEnv(t)
	rec := env.get(t, "/")
	assertStatus(t, rec, http.StatusOK)

	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "text/html; charset=utf-8")
	}
	body := rec.Body.String()
	assertContains(t, body, "Interactive Demo: Slide Animation")
	assertNotContains(t, body, `class="breadcrumb"`)
}

// TestPageCache verifies that the second identical request is served from
// the cache and that equivalent URLs share an entry.
func TestPageCache(t *testing.T) {
	env := newTestEnv(t)

	first := env.get(t, "/a-p-i-detail?entity=Timeline")
	assertStatus(t, first, http.StatusOK)
	if got := first.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("first X-Cache: got %q, want MISS", got)
	}

	second := env.get(t, "/a-p-i-detail?entity=Timeline&tab=properties")
	if got := second.Header().Get("X-Cache"); got != "HIT" {
		t.Errorf("second X-Cache: got %q, want HIT (same resolved tab)", got)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached body should equal the rendered body")
	}

	env.Docs.Apply(context.Background(), testSettings())
	if env.Cache.Len() != 0 {
		t.Errorf("Apply should clear the cache, %d entries left", env.Cache.Len())
	}
}

func TestAPIDetail_Fallback(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{"/a-p-i-detail", "/a-p-i-detail?entity=NoSuchThing"} {
		t.Run(target, func(t *testing.T) {
			rec := env.get(t, target)
			assertStatus(t, rec, http.StatusOK)
			body := rec.Body.String()
			assertContains(t, body, `<h1 class="api__title">`+store.DefaultEntity+`</h1>`)
			assertNotContains(t, body, "NoSuchThing")
		})
	}
}

func TestAPIDetail_Entity(t *testing.T) {
	env := newTestEnv(t)
	rec := env.get(t, "/a-p-i-detail?entity=Timeline")
	assertStatus(t, rec, http.StatusOK)
	body := rec.Body.String()

	assertContains(t, body, `<h1 class="api__title">Timeline</h1>`)
	assertContains(t, body, "new Timeline(options?)")
	assertContains(t, body, `<span aria-current="page">Timeline</span>`)
	assertContains(t, body, `href="#related"`)
	assertContains(t, body, `id="panel-properties" aria-labelledby="tab-properties">`)
	assertContains(t, body, `id="panel-methods" aria-labelledby="tab-methods" hidden>`)
}

func TestResolveTab(t *testing.T) {
	st := store.New()
	player, _ := st.Entity("AnimationPlayer")
	easing, _ := st.Entity("EasingFunctions")

	tests := []struct {
		name      string
		entity    models.APIEntity
		requested string
		member    string
		want      string
	}{
		{"default is first available", player, "", "", TabProperties},
		{"explicit tab wins", player, TabMethods, "duration", TabMethods},
		{"member selects its tab", player, "", "pause", TabMethods},
		{"unknown tab ignored", player, "bogus", "", TabProperties},
		{"missing tab skipped", easing, "", "", TabMethods},
		{"unavailable tab ignored", easing, TabProperties, "", TabMethods},
		{"demo always available", easing, TabDemo, "", TabDemo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveTab(tt.entity, tt.requested, tt.member); got != tt.want {
				t.Errorf("resolveTab() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIDetail_MemberHighlight(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/a-p-i-detail?entity=AnimationPlayer&member=pause")
	assertStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assertContains(t, body, `class="member-slot is-highlighted" id="member-pause"`)
	assertContains(t, body, `id="panel-methods" aria-labelledby="tab-methods">`)

	rec = env.get(t, "/a-p-i-detail?entity=AnimationPlayer&member=ghost")
	assertStatus(t, rec, http.StatusOK)
	assertNotContains(t, rec.Body.String(), "is-highlighted")
}

func TestSectionIndex(t *testing.T) {
	st := store.New()
	easing, _ := st.Entity("EasingFunctions")

	var labels []string
	for _, l := range sectionIndex(easing) {
		labels = append(labels, l.Label)
	}
	want := []string{"Overview", "Methods", "Demo"}
	if len(labels) != len(want) {
		t.Fatalf("sections: got %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("section %d: got %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestGuidesListing(t *testing.T) {
	env := newTestEnv(t)
	rec := env.get(t, "/guides-listing")
	assertStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assertContains(t, body, "Guides &amp; Tutorials")
	assertNotContains(t, body, "Showing guides in")

	rec = env.get(t, "/guides-listing?category=core-concepts")
	assertStatus(t, rec, http.StatusOK)
	body = rec.Body.String()
	assertContains(t, body, "Showing guides in <strong>Core Concepts</strong>")
	assertContains(t, body, "<code>Mastering Keyframe Animations</code>")
	assertNotContains(t, body, "<code>Performance Best Practices for Smooth Animations</code>")

	// Unknown categories fall back to the full listing.
	rec = env.get(t, "/guides-listing?category=nope")
	assertStatus(t, rec, http.StatusOK)
	body = rec.Body.String()
	assertNotContains(t, body, "Showing guides in")
	assertContains(t, body, "<code>Performance Best Practices for Smooth Animations</code>")
}

func TestGuide(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/guides-listing/easing-functions")
	assertStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assertContains(t, body, `href="/guides-listing?category=core-concepts"`)

	for _, target := range []string{"/guides-listing/missing-guide", "/guides-listing/Easing-Functions"} {
		t.Run(target, func(t *testing.T) {
			rec := env.get(t, target)
			assertStatus(t, rec, http.StatusNotFound)
			assertContains(t, rec.Body.String(), "Oops! Page not found")
		})
	}
}

func TestExamplesGallery_Clamp(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		target string
		want   string
	}{
		{"/examples-gallery", "Simple Fade Animation"},
		{"/examples-gallery?page=2", "Scale &amp; Rotate Effect"},
		{"/examples-gallery?page=99", "Scale &amp; Rotate Effect"},
		{"/examples-gallery?page=99999999999999999999999", "Scale &amp; Rotate Effect"},
		{"/examples-gallery?page=-3", "Simple Fade Animation"},
		{"/examples-gallery?page=abc", "Simple Fade Animation"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := env.get(t, tt.target)
			assertStatus(t, rec, http.StatusOK)
			assertContains(t, rec.Body.String(), tt.want)
		})
	}

	// page=99 clamps to the last page and shares its cache entry.
	if got := env.get(t, "/examples-gallery?page=2").Header().Get("X-Cache"); got != "HIT" {
		t.Errorf("X-Cache for page 2 after clamped request: got %q, want HIT", got)
	}
}

func TestSearch(t *testing.T) {
	env := newTestEnv(t)

	t.Run("empty query prompts", func(t *testing.T) {
		rec := env.get(t, "/search")
		assertStatus(t, rec, http.StatusOK)
		body := rec.Body.String()
		assertContains(t, body, "Enter a search term to begin")
		assertNotContains(t, body, "Results for")
	})

	t.Run("blank query prompts", func(t *testing.T) {
		rec := env.get(t, "/search?q=+++")
		assertContains(t, rec.Body.String(), "Enter a search term to begin")
	})

	t.Run("case insensitive", func(t *testing.T) {
		rec := env.get(t, "/search?q=TIMELINE")
		assertStatus(t, rec, http.StatusOK)
		body := rec.Body.String()
		assertContains(t, body, "Results for &quot;TIMELINE&quot;")
		assertContains(t, body, "/a-p-i-detail?entity=Timeline")
	})

	t.Run("no results", func(t *testing.T) {
		rec := env.get(t, "/search?q=zzzz")
		assertContains(t, rec.Body.String(), "No results found for &quot;zzzz&quot;")
	})

	t.Run("paged and clamped", func(t *testing.T) {
		rec := env.get(t, "/search?q=eas&page=50")
		assertStatus(t, rec, http.StatusOK)
		body := rec.Body.String()
		assertContains(t, body, `aria-current="page">2</a>`)
		assertContains(t, body, `href="/search?q=eas" rel="prev"`)
	})

	t.Run("query prefills header", func(t *testing.T) {
		rec := env.get(t, "/search?q=fade")
		assertContains(t, rec.Body.String(), `value="fade"`)
	})
}

// TestSearchNewQueryStartsAtFirstPage verifies that the search forms never
// carry the current page, so submitting a new query always opens page 1.
func TestSearchNewQueryStartsAtFirstPage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/search?q=eas&page=2")
	assertStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assertContains(t, body, `aria-current="page">2</a>`)
	if n := strings.Count(body, `name="q"`); n != 2 {
		t.Fatalf("expected the header and page search forms, found %d query inputs", n)
	}
	assertNotContains(t, body, `name="page"`)

	// A form submission sends only q.
	rec = env.get(t, "/search?q=ease")
	assertStatus(t, rec, http.StatusOK)
	body = rec.Body.String()
	assertContains(t, body, `aria-current="page">1</a>`)
	assertContains(t, body, `href="/search?page=2&amp;q=ease" rel="next"`)
	assertNotContains(t, body, `rel="prev"`)
}

func TestNotFound(t *testing.T) {
	env := newTestEnv(t)
	rec := env.get(t, "/no/such/page")
	assertStatus(t, rec, http.StatusNotFound)
	body := rec.Body.String()
	assertContains(t, body, "404")
	assertContains(t, body, "<!DOCTYPE html>")
	if rec.Header().Get("X-Cache") != "" {
		t.Error("not-found pages should not be cached")
	}
	if env.Cache.Len() != 0 {
		t.Errorf("cache should be empty after a 404, has %d entries", env.Cache.Len())
	}
}

func TestSettingsApply(t *testing.T) {
	env := newTestEnv(t)

	s := testSettings()
	s.GalleryPageSize = 10
	s.CopyResetDelay = 750 * time.Millisecond
	env.Docs.Apply(context.Background(), s)

	rec := env.get(t, "/examples-gallery")
	body := rec.Body.String()
	assertContains(t, body, "Keyframe Sequence Animation")
	assertContains(t, body, `data-copy-reset-ms="750"`)
	assertNotContains(t, body, `class="pagination"`)
}
