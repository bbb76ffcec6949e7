// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"html/template"
	"net/url"
	"strconv"

	"animdocs/internal/models"
	"animdocs/internal/paginate"
)

// Crumb is one breadcrumb entry. The current page has no Href.
type Crumb struct {
	Label string
	Href  string
}

// Tab is one server-rendered tab link.
type Tab struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

// NavLink is a sidebar entry.
type NavLink struct {
	Label  string
	Href   string
	Count  int
	Active bool
}

// CodeBlock is the input to the code-block component.
type CodeBlock struct {
	Code     string // raw source, copied verbatim
	Language string
	FileName string
}

// Pager drives the pagination component. Keep holds the query parameters
// that every page link must carry (for example q on the search page).
type Pager struct {
	Path       string
	Keep       url.Values
	Page       int
	TotalPages int
	Links      []paginate.Link
}

// NewPager builds a Pager for a page already clamped by paginate.Slice.
func NewPager(path string, keep url.Values, page, totalPages int) Pager {
	return Pager{
		Path:       path,
		Keep:       keep,
		Page:       page,
		TotalPages: totalPages,
		Links:      paginate.Links(page, totalPages),
	}
}

// Show reports whether controls are rendered at all.
func (p Pager) Show() bool { return p.TotalPages > 1 }

func (p Pager) HasPrev() bool { return p.Page > 1 }
func (p Pager) HasNext() bool { return p.Page < p.TotalPages }
func (p Pager) Prev() int     { return p.Page - 1 }
func (p Pager) Next() int     { return p.Page + 1 }

// URL returns the link for page n. Page 1 omits the parameter so it shares
// a URL with the unpaginated view.
func (p Pager) URL(n int) string {
	q := url.Values{}
	for k, v := range p.Keep {
		if k != "page" {
			q[k] = v
		}
	}
	if n > 1 {
		q.Set("page", strconv.Itoa(n))
	}
	if enc := q.Encode(); enc != "" {
		return p.Path + "?" + enc
	}
	return p.Path
}

// HomeView is the data for the homepage.
type HomeView struct {
	Features   []models.Feature
	Highlights []models.Highlight
	DemoType   models.AnimationType
}

// APIView is the data for the API reference page.
type APIView struct {
	Entity    models.APIEntity
	Entities  []NavLink
	Sections  []NavLink // "On this page" index, non-empty sections only
	Tabs      []Tab
	ActiveTab string
	Member    string // highlighted member name, if any
	DemoType  models.AnimationType
}

// GuidesView is the data for the guides listing.
type GuidesView struct {
	Categories []NavLink
	Category   string // selected category name, empty for all
	Guides     []models.Guide
}

// GuideView is the data for a single guide.
type GuideView struct {
	Guide    models.Guide
	Category models.GuideCategory
	Body     template.HTML
}

// ExamplesView is the data for the examples gallery.
type ExamplesView struct {
	Examples []models.Example
	Pager    Pager
	Total    int
}

// SearchView is the data for the search page.
type SearchView struct {
	Query   string
	Results []models.Record
	Total   int
	Pager   Pager
}

// NotFoundView is the data for the not-found page.
type NotFoundView struct {
	Path string
}
