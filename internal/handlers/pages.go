// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"animdocs/internal/cache"
	"animdocs/internal/markdown"
	"animdocs/internal/middleware"
	"animdocs/internal/models"
	"animdocs/internal/paginate"
	"animdocs/internal/render"
	"animdocs/internal/search"
)

// Routes served by this package.
const (
	PathHome     = "/"
	PathAPI      = "/a-p-i-detail"
	PathGuides   = "/guides-listing"
	PathExamples = "/examples-gallery"
	PathSearch   = "/search"
)

var homeCrumb = render.Crumb{Label: "Home", Href: PathHome}

// Homepage renders the landing page.
func (d *Docs) Homepage(w http.ResponseWriter, r *http.Request) {
	key := cache.Key(PathHome, nil)
	if d.cached(w, r, key) {
		return
	}

	s := d.current()
	view := render.HomeView{
		Features:   d.store.Features(),
		Highlights: d.store.Highlights(),
		DemoType:   models.AnimationSlide,
	}
	d.respond(w, r, key, http.StatusOK, "home", d.pageData(s, "home", "", view))
}

// APIDetail renders the reference page for ?entity=, falling back to the
// default entity when it is missing or unknown.
func (d *Docs) APIDetail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	entity := d.store.EntityOrDefault(nameParam(q.Get("entity")))
	member := nameParam(q.Get("member"))
	if !hasMember(entity, member) {
		member = ""
	}
	tab := resolveTab(entity, nameParam(q.Get("tab")), member)

	key := cache.Key(PathAPI, url.Values{"entity": {entity.Name}, "tab": {tab}, "member": {member}})
	if d.cached(w, r, key) {
		return
	}

	view := render.APIView{
		Entity:    entity,
		Entities:  d.entityLinks(entity.Name),
		Sections:  sectionIndex(entity),
		Tabs:      tabLinks(entity, tab),
		ActiveTab: tab,
		Member:    member,
		DemoType:  models.AnimationSlide,
	}
	data := d.pageData(d.current(), "api", entity.Name, view)
	data.Crumbs = []render.Crumb{homeCrumb, {Label: "API Reference", Href: PathAPI}, {Label: entity.Name}}
	d.respond(w, r, key, http.StatusOK, "api", data)
}

// GuidesListing renders the guide cards, filtered by ?category= when it
// names a known category.
func (d *Docs) GuidesListing(w http.ResponseWriter, r *http.Request) {
	category := nameParam(r.URL.Query().Get("category"))
	guides, ok := d.store.GuidesByCategory(category)
	if !ok {
		category = ""
	}

	key := cache.Key(PathGuides, url.Values{"category": {category}})
	if d.cached(w, r, key) {
		return
	}

	view := render.GuidesView{
		Categories: d.categoryLinks(category),
		Guides:     guides,
	}
	crumbs := []render.Crumb{homeCrumb, {Label: "Guides", Href: PathGuides}}
	title := "Guides"
	if c, found := d.store.Category(category); found {
		view.Category = c.Name
		title = c.Name + " Guides"
		crumbs = append(crumbs, render.Crumb{Label: c.Name})
	} else {
		crumbs[1].Href = ""
	}

	data := d.pageData(d.current(), "guides", title, view)
	data.Crumbs = crumbs
	d.respond(w, r, key, http.StatusOK, "guides", data)
}

// Guide renders a single guide's Markdown body.
func (d *Docs) Guide(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	if !validSlug(slugParam) {
		d.NotFound(w, r)
		return
	}
	guide, ok := d.store.FindGuide(slugParam)
	if !ok {
		d.NotFound(w, r)
		return
	}

	key := cache.Key(guide.DocLink(), nil)
	if d.cached(w, r, key) {
		return
	}

	body, err := markdown.ToHTML(guide.Body)
	if err != nil {
		slog.Error("render guide markdown failed",
			"request_id", middleware.RequestIDFrom(r.Context()),
			"slug", guide.Slug,
			"error", err,
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	category, _ := d.store.Category(guide.Category)
	view := render.GuideView{Guide: guide, Category: category, Body: body}
	data := d.pageData(d.current(), "guides", guide.Title, view)
	data.Crumbs = []render.Crumb{
		homeCrumb,
		{Label: "Guides", Href: PathGuides},
		{Label: category.Name, Href: PathGuides + "?category=" + url.QueryEscape(category.Slug)},
		{Label: guide.Title},
	}
	d.respond(w, r, key, http.StatusOK, "guide", data)
}

// ExamplesGallery renders one page of animation examples.
func (d *Docs) ExamplesGallery(w http.ResponseWriter, r *http.Request) {
	s := d.current()
	p := paginate.Slice(d.store.Examples(), paginate.ParsePage(r.URL.Query().Get("page")), s.GalleryPageSize)

	key := cache.Key(PathExamples, pageValues(p.Page))
	if d.cached(w, r, key) {
		return
	}

	view := render.ExamplesView{
		Examples: p.Items,
		Pager:    render.NewPager(PathExamples, nil, p.Page, p.TotalPages),
		Total:    p.Total,
	}
	data := d.pageData(s, "examples", "Examples", view)
	data.Crumbs = []render.Crumb{homeCrumb, {Label: "Examples"}}
	d.respond(w, r, key, http.StatusOK, "examples", data)
}

// Search renders the records matching ?q=, one page at a time. An empty
// query shows a prompt and no results.
func (d *Docs) Search(w http.ResponseWriter, r *http.Request) {
	s := d.current()
	q := search.Normalize(r.URL.Query().Get("q"))
	results := search.Filter(d.store.SearchRecords(), q)
	p := paginate.Slice(results, paginate.ParsePage(r.URL.Query().Get("page")), s.SearchPageSize)

	keyValues := pageValues(p.Page)
	keyValues.Set("q", q)
	key := cache.Key(PathSearch, keyValues)
	if d.cached(w, r, key) {
		return
	}

	view := render.SearchView{
		Query:   q,
		Results: p.Items,
		Total:   p.Total,
		Pager:   render.NewPager(PathSearch, url.Values{"q": {q}}, p.Page, p.TotalPages),
	}
	title := "Search"
	if q != "" {
		title = "Search: " + q
	}
	data := d.pageData(s, "search", title, view)
	data.Query = q
	data.Crumbs = []render.Crumb{homeCrumb, {Label: "Search"}}
	d.respond(w, r, key, http.StatusOK, "search", data)
}

// NotFound renders the not-found view with the full layout and a 404.
func (d *Docs) NotFound(w http.ResponseWriter, r *http.Request) {
	view := render.NotFoundView{Path: r.URL.Path}
	d.respond(w, r, "", http.StatusNotFound, "notfound", d.pageData(d.current(), "", "Page Not Found", view))
}

// pageValues returns the page parameter for cache keys; page 1 is implied.
func pageValues(page int) url.Values {
	v := url.Values{}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	return v
}

func (d *Docs) entityLinks(active string) []render.NavLink {
	names := d.store.EntityNames()
	links := make([]render.NavLink, 0, len(names))
	for _, n := range names {
		links = append(links, render.NavLink{
			Label:  n,
			Href:   PathAPI + "?entity=" + url.QueryEscape(n),
			Active: n == active,
		})
	}
	return links
}

func (d *Docs) categoryLinks(active string) []render.NavLink {
	guides := d.store.Guides()
	links := []render.NavLink{{Label: "All Guides", Href: PathGuides, Count: len(guides), Active: active == ""}}
	for _, c := range d.store.Categories() {
		count := 0
		for _, g := range guides {
			if g.Category == c.Slug {
				count++
			}
		}
		links = append(links, render.NavLink{
			Label:  c.Name,
			Href:   PathGuides + "?category=" + url.QueryEscape(c.Slug),
			Count:  count,
			Active: c.Slug == active,
		})
	}
	return links
}

// Tab IDs in display order.
const (
	TabProperties = "properties"
	TabMethods    = "methods"
	TabExamples   = "examples"
	TabDemo       = "demo"
)

var tabLabels = map[string]string{
	TabProperties: "Properties",
	TabMethods:    "Methods",
	TabExamples:   "Examples",
	TabDemo:       "Demo",
}

// availableTabs lists the tabs with content. The demo tab is always present.
func availableTabs(e models.APIEntity) []string {
	var tabs []string
	if e.HasProperties() {
		tabs = append(tabs, TabProperties)
	}
	if e.HasMethods() {
		tabs = append(tabs, TabMethods)
	}
	if e.HasExamples() {
		tabs = append(tabs, TabExamples)
	}
	return append(tabs, TabDemo)
}

// resolveTab picks the active tab: an explicit valid tab, else the tab
// holding member, else the first available tab.
func resolveTab(e models.APIEntity, requested, member string) string {
	avail := availableTabs(e)
	if slices.Contains(avail, requested) {
		return requested
	}
	if member != "" {
		if slices.ContainsFunc(e.Properties, func(m models.APIMember) bool { return m.Name == member }) {
			return TabProperties
		}
		if slices.ContainsFunc(e.Methods, func(m models.APIMember) bool { return m.Name == member }) {
			return TabMethods
		}
	}
	return avail[0]
}

func hasMember(e models.APIEntity, name string) bool {
	if name == "" {
		return false
	}
	match := func(m models.APIMember) bool { return m.Name == name }
	return slices.ContainsFunc(e.Properties, match) || slices.ContainsFunc(e.Methods, match)
}

func tabHref(entity, tab string) string {
	return PathAPI + "?" + url.Values{"entity": {entity}, "tab": {tab}}.Encode()
}

func tabLinks(e models.APIEntity, active string) []render.Tab {
	avail := availableTabs(e)
	tabs := make([]render.Tab, 0, len(avail))
	for _, id := range avail {
		tabs = append(tabs, render.Tab{
			ID:     id,
			Label:  tabLabels[id],
			Href:   tabHref(e.Name, id),
			Active: id == active,
		})
	}
	return tabs
}

// sectionIndex builds the "On this page" list from the non-empty sections.
func sectionIndex(e models.APIEntity) []render.NavLink {
	links := []render.NavLink{{Label: "Overview", Href: "#overview"}}
	if e.HasConstructor() {
		links = append(links, render.NavLink{Label: "Constructor", Href: "#constructor"})
	}
	for _, id := range availableTabs(e) {
		links = append(links, render.NavLink{Label: tabLabels[id], Href: tabHref(e.Name, id) + "#members"})
	}
	if e.HasRelated() {
		links = append(links, render.NavLink{Label: "Related Information", Href: "#related"})
	}
	return links
}
